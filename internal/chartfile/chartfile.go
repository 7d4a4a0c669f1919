// Package chartfile reads YAML chart descriptions and turns them into
// finished figures. Series take their data inline or from columns of a
// spreadsheet source.
package chartfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vdobler/wbplot"
	"github.com/vdobler/wbplot/stat"
)

var (
	// ErrUnknownKind is returned for series kinds not listed in Kinds.
	ErrUnknownKind = errors.New("chartfile: unknown series kind")
	// ErrUnknownSource is returned for series naming an undeclared source.
	ErrUnknownSource = errors.New("chartfile: unknown source")
	// ErrInvalid is returned for structurally invalid charts.
	ErrInvalid = errors.New("chartfile: invalid chart")
)

// Kinds lists the series kinds.
var Kinds = []string{"line", "time", "scatter", "bar", "barh", "image", "text", "hline", "vline"}

// Chart is the top level of a chart file.
type Chart struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	DPI      float64 `yaml:"dpi"`
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Notes    []Note  `yaml:"notes"`

	Palette  string `yaml:"palette"`
	PaletteN int    `yaml:"palette_n"`
	Bins     *Bins  `yaml:"bins"`

	Theme *ThemeOverrides `yaml:"theme"`

	// Output is the default file the chart renders to.
	Output string `yaml:"output"`

	Sources map[string]Source `yaml:"sources"`
	Panels  []Panel           `yaml:"panels"`

	dir string
}

// Note is a labelled footnote.
type Note struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text"`
}

// Bins requests a binned colour scale.
type Bins struct {
	Count int       `yaml:"count"`
	Edges []float64 `yaml:"edges"`
	Mode  string    `yaml:"mode"` // linear or quantile
}

// ThemeOverrides adjusts the width dependent default theme.
type ThemeOverrides struct {
	FloorAtZero    *bool    `yaml:"floor_at_zero"`
	ZeroLine       []string `yaml:"zero_line"` // chart categories
	MaxTicks       int      `yaml:"max_ticks"`
	BarAspectRatio float64  `yaml:"bar_aspect_ratio"`
	ExactWeights   bool     `yaml:"exact_weights"`
}

// Source is a spreadsheet whose first row holds the column names.
type Source struct {
	File  string `yaml:"file"`
	Sheet string `yaml:"sheet"` // default: first sheet
}

// Panel lists the series of one panel. Panels fill the grid in row
// major order.
type Panel struct {
	XLabel string   `yaml:"xlabel"`
	YLabel string   `yaml:"ylabel"`
	XScale string   `yaml:"xscale"` // linear or log
	YScale string   `yaml:"yscale"`
	XMin   *float64 `yaml:"xmin"`
	XMax   *float64 `yaml:"xmax"`
	YMin   *float64 `yaml:"ymin"`
	YMax   *float64 `yaml:"ymax"`
	Series []Series `yaml:"series"`
}

// Series is one plotting call.
type Series struct {
	Kind  string            `yaml:"kind"`
	Label string            `yaml:"label"`
	Style map[string]string `yaml:"style"`

	// Source and column names. Where keeps the rows whose columns
	// equal the given values. GroupBy draws one series per level of a
	// column. Mark labels the min, max or both extremes of YCol.
	Source  string            `yaml:"source"`
	XCol    string            `yaml:"x_col"`
	YCol    string            `yaml:"y_col"`
	Where   map[string]string `yaml:"where"`
	GroupBy string            `yaml:"group_by"`
	Mark    string            `yaml:"mark"`

	// Inline data.
	X          []float64   `yaml:"x"`
	Y          []float64   `yaml:"y"`
	Times      []string    `yaml:"times"`
	Categories []string    `yaml:"categories"`
	Z          [][]float64 `yaml:"z"`

	// Text and reference lines.
	At   []float64 `yaml:"at"`
	Text string    `yaml:"text"`
}

// Load reads the chart file path. Relative source paths are resolved
// against its directory.
func Load(path string) (*Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	c, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

// Parse decodes a chart. Unknown keys are errors.
func Parse(r io.Reader) (*Chart, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Chart
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty chart: %w", ErrInvalid)
		}
		return nil, fmt.Errorf("decoding chart: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the structure of c without touching sources.
func (c *Chart) Validate() error {
	rows, cols := max(c.Rows, 1), max(c.Cols, 1)
	if len(c.Panels) > rows*cols {
		return fmt.Errorf("%d panels for a %dx%d grid: %w", len(c.Panels), rows, cols, ErrInvalid)
	}
	if c.Bins != nil {
		if _, err := stat.ParseMode(c.Bins.Mode); err != nil {
			return fmt.Errorf("bins: %v: %w", err, ErrInvalid)
		}
	}
	if c.Theme != nil {
		for _, z := range c.Theme.ZeroLine {
			if _, err := wbplot.ParseCategory(z); err != nil {
				return fmt.Errorf("theme: %v: %w", err, ErrInvalid)
			}
		}
	}
	for i, p := range c.Panels {
		for _, sc := range []string{p.XScale, p.YScale} {
			if _, err := parseScale(sc); err != nil {
				return fmt.Errorf("panel %d: %w", i, err)
			}
		}
		for j, s := range p.Series {
			if !knownKind(s.Kind) {
				return fmt.Errorf("panel %d series %d: %q: %w", i, j, s.Kind, ErrUnknownKind)
			}
			if s.Source != "" {
				if _, ok := c.Sources[s.Source]; !ok {
					return fmt.Errorf("panel %d series %d: %q: %w", i, j, s.Source, ErrUnknownSource)
				}
			}
			if err := s.validateQuery(); err != nil {
				return fmt.Errorf("panel %d series %d: %w", i, j, err)
			}
		}
	}
	return nil
}

// validateQuery checks the row selection and marking of a series.
func (s Series) validateQuery() error {
	if s.Source == "" && (len(s.Where) > 0 || s.GroupBy != "" || s.Mark != "") {
		return fmt.Errorf("where, group_by and mark need a source: %w", ErrInvalid)
	}
	perPoint := s.Kind == "line" || s.Kind == "time" || s.Kind == "scatter"
	if s.GroupBy != "" && !perPoint {
		return fmt.Errorf("group_by on %s: %w", s.Kind, ErrInvalid)
	}
	switch s.Mark {
	case "":
	case "min", "max", "extremes":
		if !perPoint {
			return fmt.Errorf("mark on %s: %w", s.Kind, ErrInvalid)
		}
	default:
		return fmt.Errorf("mark %q: %w", s.Mark, ErrInvalid)
	}
	return nil
}

func knownKind(k string) bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func parseScale(s string) (wbplot.ScaleMode, error) {
	switch s {
	case "", "linear":
		return wbplot.Linear, nil
	case "log":
		return wbplot.Log, nil
	}
	return wbplot.Linear, fmt.Errorf("scale %q: %w", s, ErrInvalid)
}

// Options converts the figure level settings.
func (c *Chart) Options() (wbplot.Options, error) {
	opts := wbplot.Options{
		Width:    c.Width,
		Height:   c.Height,
		DPI:      c.DPI,
		Rows:     c.Rows,
		Cols:     c.Cols,
		Title:    c.Title,
		Subtitle: c.Subtitle,
		Palette:  c.Palette,
		PaletteN: c.PaletteN,
	}
	for _, n := range c.Notes {
		opts.Notes = append(opts.Notes, wbplot.Note{Label: n.Label, Text: n.Text})
	}
	if c.Bins != nil {
		mode, err := stat.ParseMode(c.Bins.Mode)
		if err != nil {
			return opts, err
		}
		opts.PaletteBins = wbplot.Bins{Count: c.Bins.Count, Edges: c.Bins.Edges, Mode: mode}
	}
	if c.Theme != nil {
		th := wbplot.ThemeForWidth(opts.Width)
		if opts.Width <= 0 {
			th = wbplot.DefaultTheme()
		}
		if c.Theme.FloorAtZero != nil {
			th.FloorAtZero = *c.Theme.FloorAtZero
		}
		if c.Theme.ZeroLine != nil {
			th.ZeroLineCategories = nil
			for _, z := range c.Theme.ZeroLine {
				cat, err := wbplot.ParseCategory(z)
				if err != nil {
					return opts, err
				}
				th.ZeroLineCategories = append(th.ZeroLineCategories, cat)
			}
		}
		if c.Theme.MaxTicks > 0 {
			th.MaxTicks = c.Theme.MaxTicks
		}
		if c.Theme.BarAspectRatio > 0 {
			th.BarAspectRatio = c.Theme.BarAspectRatio
		}
		th.ExactWeights = c.Theme.ExactWeights
		opts.Theme = &th
	}
	return opts, nil
}
