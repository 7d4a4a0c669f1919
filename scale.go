package wbplot

import (
	"math"
)

// autoscaleMargin is the fraction of the data span added on each side
// of an autoscaled axis.
const autoscaleMargin = 0.05

// extent collects the data domain of one axis.
type extent struct {
	min, max float64
	minPos   float64 // smallest positive value, for log axes
	sticky   []float64
}

func newExtent() *extent {
	return &extent{
		min:    math.Inf(+1),
		max:    math.Inf(-1),
		minPos: math.Inf(+1),
	}
}

// Train updates the domain with v. NaN and infinite values are ignored.
func (e *extent) Train(vs ...float64) {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < e.min {
			e.min = v
		}
		if v > e.max {
			e.max = v
		}
		if v > 0 && v < e.minPos {
			e.minPos = v
		}
	}
}

// Stick marks v as an edge which must not receive a margin.
func (e *extent) Stick(v float64) {
	e.sticky = append(e.sticky, v)
}

func (e *extent) empty() bool { return e.min > e.max }

func (e *extent) isSticky(v float64) bool {
	for _, s := range e.sticky {
		if s == v {
			return true
		}
	}
	return false
}

// limits returns the autoscaled view limits of the domain.
func (e *extent) limits(mode ScaleMode) (lo, hi float64) {
	if mode == Log {
		if math.IsInf(e.minPos, +1) {
			return 1, 10
		}
		min, max := math.Log10(e.minPos), math.Log10(e.max)
		lo, hi = expand(min, max)
		if e.isSticky(e.minPos) {
			lo = min
		}
		if e.isSticky(e.max) {
			hi = max
		}
		return math.Pow(10, lo), math.Pow(10, hi)
	}

	if e.empty() {
		return 0, 1
	}
	lo, hi = expand(e.min, e.max)
	if e.isSticky(e.min) {
		lo = e.min
	}
	if e.isSticky(e.max) {
		hi = e.max
	}
	return lo, hi
}

// expand adds the autoscale margin to [min,max]. A single value is
// widened relative to its magnitude.
func expand(min, max float64) (float64, float64) {
	if min == max {
		d := math.Abs(min) * autoscaleMargin
		if d == 0 {
			d = 1
		}
		return min - d, max + d
	}
	m := (max - min) * autoscaleMargin
	return min - m, max + m
}

// Flush recomputes the autoscaled range of both axes from the data
// artifacts. Fixed bounds are kept. Flush may be called any number of
// times.
func (p *Panel) Flush() {
	xs, ys := newExtent(), newExtent()
	for _, a := range p.artifacts {
		if !isData(a) {
			continue
		}
		switch a := a.(type) {
		case *Line:
			for _, xy := range a.XYs {
				xs.Train(xy.X)
				ys.Train(xy.Y)
			}
		case *Points:
			for _, xy := range a.XYs {
				xs.Train(xy.X)
				ys.Train(xy.Y)
			}
		case *Rect:
			x0, x1 := a.X, a.X+a.W
			y0, y1 := a.Y, a.Y+a.H
			xs.Train(x0, x1)
			ys.Train(y0, y1)
			// Bars grow from a zero baseline.
			if x0 == 0 || x1 == 0 {
				xs.Stick(0)
			}
			if y0 == 0 || y1 == 0 {
				ys.Stick(0)
			}
		case *Image:
			cols, rows := a.Dims()
			if cols == 0 || rows == 0 {
				continue
			}
			xs.Train(-0.5, float64(cols)-0.5)
			ys.Train(-0.5, float64(rows)-0.5)
			xs.Stick(-0.5)
			xs.Stick(float64(cols) - 0.5)
			ys.Stick(-0.5)
			ys.Stick(float64(rows) - 0.5)
		}
	}
	p.X.autoscale(xs)
	p.Y.autoscale(ys)
}

func (a *Axis) autoscale(e *extent) {
	lo, hi := e.limits(a.Scale)
	if !a.fixedMin {
		a.Min = lo
	}
	if !a.fixedMax {
		a.Max = hi
	}
}

// dataMinY returns the smallest finite data value on the Y axis.
func (p *Panel) dataMinY() (float64, bool) {
	ys := newExtent()
	for _, a := range p.artifacts {
		switch a := a.(type) {
		case *Line:
			for _, xy := range a.XYs {
				ys.Train(xy.Y)
			}
		case *Points:
			for _, xy := range a.XYs {
				ys.Train(xy.Y)
			}
		case *Rect:
			ys.Train(a.Y, a.Y+a.H)
		}
	}
	return ys.min, !ys.empty()
}
