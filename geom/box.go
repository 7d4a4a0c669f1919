// Package geom provides gonum plotters for the shapes wbplot draws
// that plotter does not cover.
package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Box is an axis aligned rectangle in data coordinates.
type Box struct {
	X0, Y0, X1, Y1 float64
	Color          color.Color
}

// Boxes draws filled rectangles, e.g. the bars of a bar chart.
type Boxes struct {
	Boxes []Box

	// LineStyle outlines each box. A zero width draws no outline.
	LineStyle draw.LineStyle
}

var (
	_ plot.Plotter    = (*Boxes)(nil)
	_ plot.DataRanger = (*Boxes)(nil)
)

// Plot implements plot.Plotter.
func (b *Boxes) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, bx := range b.Boxes {
		if bx.Color == nil || !finite(bx.X0, bx.X1, bx.Y0, bx.Y1) {
			continue
		}
		x0, x1 := trX(math.Min(bx.X0, bx.X1)), trX(math.Max(bx.X0, bx.X1))
		y0, y1 := trY(math.Min(bx.Y0, bx.Y1)), trY(math.Max(bx.Y0, bx.Y1))
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		c.FillPolygon(bx.Color, c.ClipPolygonXY(pts))
		if b.LineStyle.Width > 0 && b.LineStyle.Color != nil {
			outline := c.ClipLinesXY(append(pts, pts[0]))
			c.StrokeLines(b.LineStyle, outline...)
		}
	}
}

// DataRange implements plot.DataRanger.
func (b *Boxes) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(+1), math.Inf(+1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, bx := range b.Boxes {
		if !finite(bx.X0, bx.X1, bx.Y0, bx.Y1) {
			continue
		}
		xmin = math.Min(xmin, math.Min(bx.X0, bx.X1))
		xmax = math.Max(xmax, math.Max(bx.X0, bx.X1))
		ymin = math.Min(ymin, math.Min(bx.Y0, bx.Y1))
		ymax = math.Max(ymax, math.Max(bx.Y0, bx.Y1))
	}
	return xmin, xmax, ymin, ymax
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
