package wbplot

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Options configure a Figure. Zero values select the defaults.
type Options struct {
	Width, Height int     // pixels, default 600x500
	DPI           float64 // default 100
	Rows, Cols    int     // default 1x1

	Title    string
	Subtitle string
	Notes    []Note

	// Palette names a registered palette. PaletteN truncates cycles and
	// PaletteBins turns colormaps into binned ones.
	Palette     string
	PaletteN    int
	PaletteBins Bins

	// Theme overrides ThemeForWidth(Width).
	Theme *Theme

	Logger *zap.Logger

	// SavePath is used by Plot to save the finished figure.
	SavePath string
}

// New creates a figure with an empty panel grid. A cycle palette is
// installed on every panel so that plotting calls pick it up.
func New(opts Options) (*Figure, error) {
	if opts.Width <= 0 {
		opts.Width = 600
	}
	if opts.Height <= 0 {
		opts.Height = 500
	}
	if opts.DPI <= 0 {
		opts.DPI = 100
	}
	if opts.Rows <= 0 {
		opts.Rows = 1
	}
	if opts.Cols <= 0 {
		opts.Cols = 1
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	th := ThemeForWidth(opts.Width)
	if opts.Theme != nil {
		th = *opts.Theme
		if th.Sizes == (FontSizes{}) {
			th.Sizes, th.Spacing = SizesForWidth(opts.Width)
		}
	}
	resolved, err := ResolvePalette(opts.Palette, opts.PaletteN)
	if err != nil {
		return nil, fmt.Errorf("creating figure: %w", err)
	}
	if resolved.Cycle != nil {
		th.Cycle = resolved.Cycle
	}

	f := &Figure{
		Width:    opts.Width,
		Height:   opts.Height,
		DPI:      opts.DPI,
		Rows:     opts.Rows,
		Cols:     opts.Cols,
		Title:    opts.Title,
		Subtitle: opts.Subtitle,
		Notes:    opts.Notes,
		Theme:    th,
		palette:  resolved,
		bins:     opts.PaletteBins,
		log:      log,
	}
	for i := 0; i < f.Rows*f.Cols; i++ {
		f.Panels = append(f.Panels, NewPanel(th))
	}
	return f, nil
}

// Finish applies colours, per panel styling and tick tidying, and
// decides on the legend. Styling errors are logged and leave the panel
// partially styled. Finish may be called again after further plotting.
func (f *Figure) Finish() {
	th := f.Theme

	cm, norm := f.palette.Colormap, (*BoundaryNorm)(nil)
	if cm != nil && f.bins.IsSet() {
		bcm, bn, err := BinnedColormap(cm, f.Images(), f.bins)
		if err != nil {
			f.log.Info("keeping continuous colormap", zap.Error(err))
		} else {
			cm, norm = bcm, bn
		}
	}
	if cm != nil {
		for _, img := range f.Images() {
			img.Colormap, img.Norm = cm, norm
		}
	}

	styler := Styler{Theme: th, Logger: f.log}
	for i, p := range f.Panels {
		f.palette.Recolor(p)
		f.palette.ColorTexts(p)

		cat := ClassifyPanel(p)
		f.log.Debug("classified panel",
			zap.Int("row", i/f.Cols), zap.Int("col", i%f.Cols),
			zap.Stringer("category", cat))
		if err := styler.Apply(p, cat, th.Sizes, th.Spacing); err != nil {
			f.log.Warn("styling panel", zap.Int("panel", i), zap.Error(err))
		}
		TidyTicks(p)
	}

	f.Legend = nil
	if len(f.Panels) > 0 {
		entries := LegendEntries(f.Panels[0])
		if !SuppressLegend(entries) {
			f.Legend = entries
		}
	}
	f.finished = true
}

// Plot creates a figure, lets fn draw into its panels, finishes it and
// saves it to opts.SavePath if set.
func Plot(opts Options, fn func(panels []*Panel) error) (*Figure, error) {
	f, err := New(opts)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.New("wbplot: nil plotting function")
	}
	if err := fn(f.Panels); err != nil {
		return nil, fmt.Errorf("plotting: %w", err)
	}
	f.Finish()
	if opts.SavePath != "" {
		if err := f.Save(opts.SavePath); err != nil {
			return f, err
		}
	}
	return f, nil
}
