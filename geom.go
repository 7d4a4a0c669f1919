package wbplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrLength is returned by plotting calls whose coordinate slices
// differ in length.
var ErrLength = errors.New("wbplot: coordinate slices differ in length")

// The plotting calls below understand these fixed aesthetics:
//     label     legend label
//     color     colour, default: next colour of the panel's cycle
//     alpha     opacity in [0,1]
//     size      line width or point radius in points
//     linetype  solid, dashed, dotted, dotdash, longdash, twodash
//     width     bar width in axis units

func (p *Panel) color(style AesMapping) color.Color {
	var c color.Color
	if s, ok := style["color"]; ok {
		c = String2Color(s)
	} else {
		c = p.nextColor()
	}
	return SetAlpha(c, String2Float(style["alpha"], 0, 1, 1))
}

func xys(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%d x values, %d y values: %w", len(xs), len(ys), ErrLength)
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	return pts, nil
}

// -------------------------------------------------------------------------
// Lines and points

// Plot draws a line through the points (xs[i], ys[i]).
func (p *Panel) Plot(xs, ys []float64, style AesMapping) (*Line, error) {
	pts, err := xys(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	style = MergeStyles(style, p.theme.LineStyle)
	width := vg.Points(String2Float(style["size"], 0, 100, 2))
	line := &Line{
		XYs:    pts,
		Label:  style["label"],
		Color:  p.color(style),
		Width:  width,
		Dashes: String2LineType(style["linetype"]).Dashes(width),
	}
	p.Add(line)
	return line, nil
}

// PlotTime draws a line over time. The X axis becomes a time axis.
// Zero times are gaps in the line.
func (p *Panel) PlotTime(ts []time.Time, ys []float64, style AesMapping) (*Line, error) {
	xs := make([]float64, len(ts))
	for i, t := range ts {
		xs[i] = unixSeconds(t)
	}
	line, err := p.Plot(xs, ys, style)
	if err != nil {
		return nil, err
	}
	line.XTime = true
	p.X.Time = true
	return line, nil
}

// Scatter draws a point at each (xs[i], ys[i]).
func (p *Panel) Scatter(xs, ys []float64, style AesMapping) (*Points, error) {
	pts, err := xys(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	style = MergeStyles(style, p.theme.PointStyle)
	points := &Points{
		XYs:    pts,
		Label:  style["label"],
		Color:  p.color(style),
		Radius: vg.Points(String2Float(style["size"], 0, 100, 3)),
	}
	p.Add(points)
	return points, nil
}

// -------------------------------------------------------------------------
// Bars

// Bar draws one vertical bar per category. Categories are placed on
// the X axis in order of first appearance.
func (p *Panel) Bar(categories []string, values []float64, style AesMapping) ([]*Rect, error) {
	if len(categories) != len(values) {
		return nil, fmt.Errorf("bar: %d categories, %d values: %w", len(categories), len(values), ErrLength)
	}
	xs := make([]float64, len(categories))
	for i, c := range categories {
		xs[i] = p.X.category(c)
	}
	return p.bars(xs, values, false, style)
}

// BarAt draws vertical bars centred at numeric positions.
func (p *Panel) BarAt(xs, values []float64, style AesMapping) ([]*Rect, error) {
	if len(xs) != len(values) {
		return nil, fmt.Errorf("bar: %d positions, %d values: %w", len(xs), len(values), ErrLength)
	}
	return p.bars(xs, values, false, style)
}

// BarH draws one horizontal bar per category on the Y axis.
func (p *Panel) BarH(categories []string, values []float64, style AesMapping) ([]*Rect, error) {
	if len(categories) != len(values) {
		return nil, fmt.Errorf("barh: %d categories, %d values: %w", len(categories), len(values), ErrLength)
	}
	ys := make([]float64, len(categories))
	for i, c := range categories {
		ys[i] = p.Y.category(c)
	}
	return p.bars(ys, values, true, style)
}

// BarHAt draws horizontal bars centred at numeric positions.
func (p *Panel) BarHAt(ys, values []float64, style AesMapping) ([]*Rect, error) {
	if len(ys) != len(values) {
		return nil, fmt.Errorf("barh: %d positions, %d values: %w", len(ys), len(values), ErrLength)
	}
	return p.bars(ys, values, true, style)
}

// bars constructs the rectangles of one bar call: bars of the given
// width centred at pos, growing from zero to value.
func (p *Panel) bars(pos, values []float64, horizontal bool, style AesMapping) ([]*Rect, error) {
	style = MergeStyles(style, p.theme.BarStyle)
	width := String2Float(style["width"], 0, math.MaxFloat64, 0.8)
	col := p.color(style)
	group := p.nextGroup()
	rects := make([]*Rect, len(pos))
	for i := range pos {
		r := &Rect{Group: group, Label: style["label"], Color: col}
		if horizontal {
			r.X, r.Y, r.W, r.H = 0, pos[i]-width/2, values[i], width
		} else {
			r.X, r.Y, r.W, r.H = pos[i]-width/2, 0, width, values[i]
		}
		rects[i] = r
		p.Add(r)
	}
	return rects, nil
}

// -------------------------------------------------------------------------
// Images, reference lines and text

// ImShow draws data as a colour-mapped grid with cell (c,r) centred on
// (c,r).
func (p *Panel) ImShow(data [][]float64) *Image {
	img := &Image{Data: data}
	p.Add(img)
	return img
}

// HLine draws a horizontal reference line at y.
func (p *Panel) HLine(y float64, style AesMapping) *RefLine {
	return p.refLine(Horizontal, y, style)
}

// VLine draws a vertical reference line at x.
func (p *Panel) VLine(x float64, style AesMapping) *RefLine {
	return p.refLine(Vertical, x, style)
}

func (p *Panel) refLine(o Orientation, at float64, style AesMapping) *RefLine {
	style = MergeStyles(style, p.theme.LineStyle)
	width := vg.Points(String2Float(style["size"], 0, 100, 1))
	ls := draw.LineStyle{
		Color:  p.color(MergeStyles(style, AesMapping{"color": "black"})),
		Width:  width,
		Dashes: String2LineType(style["linetype"]).Dashes(width),
	}
	return p.AddRefLine(o, at, RoleUser, ls)
}

// Text places s at data coordinates (x, y), horizontally centred.
func (p *Panel) Text(x, y float64, s string, style AesMapping) *Text {
	t := &Text{
		X:      x,
		Y:      y,
		Text:   s,
		Role:   RoleUser,
		XAlign: text.XCenter,
		YAlign: text.YCenter,
		Style: TextStyle{
			Size:  vg.Points(String2Float(style["size"], 1, 200, 10)),
			Color: String2Color(MergeStyles(style, AesMapping{"color": "#111111"})["color"]),
		},
	}
	p.Annotate(t)
	return t
}
