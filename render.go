package wbplot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/wbplot/geom"
)

// ErrUnknownFormat is returned for unsupported export formats.
var ErrUnknownFormat = errors.New("wbplot: unknown image format")

// Formats lists the supported export formats.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// size is the canvas size of f in points.
func (f *Figure) size() (vg.Length, vg.Length) {
	w := vg.Length(float64(f.Width)/f.DPI) * vg.Inch
	h := vg.Length(float64(f.Height)/f.DPI) * vg.Inch
	return w, h
}

// Save renders f into path. The format follows the file extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !knownFormat(format) {
		return fmt.Errorf("saving %s: %w", path, ErrUnknownFormat)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving figure: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("saving figure: %w", cerr)
		}
	}()
	_, err = f.WriteTo(out, format)
	return err
}

func knownFormat(format string) bool {
	format = strings.ToLower(format)
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// WriteTo renders f in the given format and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	width, height := f.size()

	var c vg.CanvasWriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(int(f.DPI)))
		switch format {
		case "png":
			c = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			c = vgimg.JpegCanvas{Canvas: img}
		default:
			c = vgimg.TiffCanvas{Canvas: img}
		}
	case "svg":
		c = vgsvg.New(width, height)
	case "pdf":
		c = vgpdf.New(width, height)
	case "eps":
		c = vgeps.New(width, height)
	default:
		return 0, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	if err := f.Draw(draw.New(c)); err != nil {
		return 0, err
	}
	return c.WriteTo(w)
}

// Draw draws the finished figure onto c.
func (f *Figure) Draw(c draw.Canvas) error {
	if !f.finished {
		f.Finish()
	}
	th := f.Theme

	c.SetColor(th.Background)
	c.Fill(c.Rectangle.Path())

	size := vg.Point{X: c.Max.X - c.Min.X, Y: c.Max.Y - c.Min.Y}
	l := headerLayout(size, f.Title, f.Subtitle, f.Notes, th)
	l.bottom = bottomMargin(f.hasXLabel(), len(f.Legend) > 0, len(f.Notes) > 0, l.noteMargin, th.Spacing.XL)
	if l.bottom >= l.top {
		return fmt.Errorf("wbplot: figure of %dx%d pixels too small for its texts", f.Width, f.Height)
	}

	origin := func(p vg.Point) vg.Point { return vg.Point{X: c.Min.X + p.X, Y: c.Min.Y + p.Y} }
	for i := range l.texts {
		l.texts[i].at = origin(l.texts[i].at)
	}
	l.drawTexts(c)

	region := draw.Crop(c, l.marginX, -l.marginX, l.bottom, l.top-size.Y)
	plots := make([][]*plot.Plot, f.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.Cols)
		for col := range plots[r] {
			plt, err := f.Panel(r, col).gonumPlot(th)
			if err != nil {
				return fmt.Errorf("panel %d,%d: %w", r, col, err)
			}
			plots[r][col] = plt
		}
	}
	tiles := draw.Tiles{
		Rows: f.Rows,
		Cols: f.Cols,
		PadX: th.Spacing.XL,
		PadY: th.Spacing.XL,
	}
	canvases := plot.Align(plots, tiles, region)
	for r := range plots {
		for col := range plots[r] {
			plots[r][col].Draw(canvases[r][col])
		}
	}

	if len(f.Legend) > 0 {
		drawLegend(c, f.Legend, c.Min.Y+l.legendBottom(), th)
	}
	return nil
}

// -------------------------------------------------------------------------
// Panels as gonum plots

// gonumPlot converts p into a gonum plot. Data artifacts are drawn in
// order, then reference lines, then text.
func (p *Panel) gonumPlot(th Theme) (*plot.Plot, error) {
	p.Flush()
	plt := plot.New()
	plt.BackgroundColor = th.Background

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = nil
	if p.X.ShowGrid {
		grid.Vertical = p.X.Grid
	}
	if p.Y.ShowGrid {
		grid.Horizontal = p.Y.Grid
	}
	plt.Add(grid)

	var boxes geom.Boxes
	var refs, labels []plot.Plotter
	for _, a := range p.artifacts {
		switch a := a.(type) {
		case *Line:
			for _, seg := range segments(a.XYs) {
				l, err := plotter.NewLine(seg)
				if err != nil {
					return nil, fmt.Errorf("line: %w", err)
				}
				l.LineStyle = draw.LineStyle{Color: a.Color, Width: a.Width, Dashes: a.Dashes}
				plt.Add(l)
			}
		case *Points:
			pts := finiteXYs(a.XYs)
			if len(pts) == 0 {
				continue
			}
			s, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, fmt.Errorf("scatter: %w", err)
			}
			s.GlyphStyle = draw.GlyphStyle{Color: a.Color, Radius: a.Radius, Shape: draw.CircleGlyph{}}
			plt.Add(s)
		case *Rect:
			boxes.Boxes = append(boxes.Boxes, geom.Box{
				X0: a.X, Y0: a.Y, X1: a.X + a.W, Y1: a.Y + a.H, Color: a.Color,
			})
		case *Image:
			hm, err := heatMap(a, th)
			if err != nil {
				return nil, err
			}
			if hm != nil {
				plt.Add(hm)
			}
		case *RefLine:
			refs = append(refs, &geom.RefLine{
				Horizontal: a.Orient == Horizontal,
				At:         a.At,
				LineStyle:  a.Style,
			})
		case *Text:
			if !finite(a.X) || !finite(a.Y) || a.Text == "" {
				continue
			}
			lb, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    plotter.XYs{{X: a.X, Y: a.Y}},
				Labels: []string{a.Text},
			})
			if err != nil {
				return nil, fmt.Errorf("text: %w", err)
			}
			st := a.Style.gonum(th)
			st.XAlign, st.YAlign = a.XAlign, a.YAlign
			lb.TextStyle[0] = st
			lb.Offset = a.Offset
			labels = append(labels, lb)
		}
	}
	if len(boxes.Boxes) > 0 {
		plt.Add(&boxes)
	}
	plt.Add(refs...)
	plt.Add(labels...)

	if err := p.X.configure(&plt.X, th); err != nil {
		return nil, err
	}
	if err := p.Y.configure(&plt.Y, th); err != nil {
		return nil, err
	}
	return plt, nil
}

// configure copies the axis state onto a gonum axis. It must run after
// all plotters were added so that the range is not widened again.
func (a *Axis) configure(dst *plot.Axis, th Theme) error {
	if a.Scale == Log {
		if a.Min <= 0 {
			return fmt.Errorf("%s axis: log scale needs a positive range, have [%g,%g]", a.Name, a.Min, a.Max)
		}
		dst.Scale = plot.LogScale{}
	}
	dst.Min, dst.Max = a.Min, a.Max

	dst.Label.Text = a.Label
	a.LabelStyle.apply(&dst.Label.TextStyle, th)
	dst.Label.Padding = a.LabelPad
	dst.LineStyle.Width = 0

	a.TickLabelStyle.apply(&dst.Tick.Label, th)
	dst.Tick.LineStyle = a.TickStyle
	dst.Tick.Length = a.TickLength
	dst.Tick.Marker = plot.ConstantTicks(a.Ticks())
	if a.TickNudge > 0 {
		dst.Padding -= a.TickNudge
		if dst.Padding < 0 {
			dst.Padding = 0
		}
	}
	return nil
}

// segments splits xys at non-finite points.
func segments(xys plotter.XYs) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for _, xy := range xys {
		if !finite(xy.X) || !finite(xy.Y) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, xy)
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func finiteXYs(xys plotter.XYs) plotter.XYs {
	var pts plotter.XYs
	for _, xy := range xys {
		if finite(xy.X) && finite(xy.Y) {
			pts = append(pts, xy)
		}
	}
	return pts
}

// -------------------------------------------------------------------------
// Images

// imageGrid adapts an Image to plotter.GridXYZ. With a norm the grid
// values are bin indices.
type imageGrid struct {
	img *Image
}

func (g imageGrid) Dims() (c, r int) { return g.img.Dims() }
func (g imageGrid) X(c int) float64  { return float64(c) }
func (g imageGrid) Y(r int) float64  { return float64(r) }

func (g imageGrid) Z(c, r int) float64 {
	row := g.img.Data[r]
	if c >= len(row) || !finite(row[c]) {
		return math.NaN()
	}
	if g.img.Norm != nil {
		return float64(g.img.Norm.Bin(row[c]))
	}
	return row[c]
}

func heatMap(img *Image, th Theme) (*plotter.HeatMap, error) {
	cols, rows := img.Dims()
	if cols == 0 || rows == 0 {
		return nil, nil
	}
	cm := img.Colormap
	if cm == nil {
		r, err := ResolvePalette("wb_seq_bad_to_good", 0)
		if err != nil {
			return nil, err
		}
		cm = r.Colormap
	}

	grid := imageGrid{img}
	var min, max float64
	var pal = cm.Palette(0)
	if img.Norm != nil {
		min, max = 0, float64(img.Norm.Bins()-1)
	} else {
		min, max = math.Inf(+1), math.Inf(-1)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if v := grid.Z(c, r); !math.IsNaN(v) {
					min, max = math.Min(min, v), math.Max(max, v)
				}
			}
		}
		if min > max {
			return nil, nil
		}
	}
	if max <= min {
		max = min + 1
	}
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min, hm.Max = min, max
	return hm, nil
}
