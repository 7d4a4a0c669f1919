package geom

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// RefLine is a line across the whole data area at a fixed X or Y.
type RefLine struct {
	// Horizontal selects a line at Y == At, otherwise at X == At.
	Horizontal bool
	At         float64

	draw.LineStyle
}

var _ plot.Plotter = (*RefLine)(nil)

// Plot implements plot.Plotter. Lines outside the visible range are
// not drawn.
func (r *RefLine) Plot(c draw.Canvas, plt *plot.Plot) {
	if !finite(r.At) || r.Color == nil || r.Width <= 0 {
		return
	}
	if r.Horizontal {
		if r.At < plt.Y.Min || r.At > plt.Y.Max {
			return
		}
		_, trY := plt.Transforms(&c)
		y := trY(r.At)
		c.StrokeLine2(r.LineStyle, c.Min.X, y, c.Max.X, y)
		return
	}
	if r.At < plt.X.Min || r.At > plt.X.Max {
		return
	}
	trX, _ := plt.Transforms(&c)
	x := trX(r.At)
	c.StrokeLine2(r.LineStyle, x, c.Min.Y, x, c.Max.Y)
}
