package wbplot

import "math"

// Orientation is the direction of bars or reference lines.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// DetectOrientation decides whether the bar groups are drawn
// horizontally. A group is horizontal if its mean absolute width exceeds
// ratio times its mean absolute height; the first such group decides.
// Rectangles with a zero or non-finite extent are ignored, as are groups
// without any usable rectangle. Without a verdict bars are Vertical.
func DetectOrientation(groups [][]*Rect, ratio float64) Orientation {
	for _, group := range groups {
		var sumW, sumH float64
		n := 0
		for _, r := range group {
			if r == nil {
				continue
			}
			w, h := math.Abs(r.W), math.Abs(r.H)
			if w == 0 || h == 0 || !finite(w) || !finite(h) {
				continue
			}
			sumW += w
			sumH += h
			n++
		}
		if n == 0 {
			continue
		}
		meanW, meanH := sumW/float64(n), sumH/float64(n)
		if meanW > ratio*meanH {
			return Horizontal
		}
	}
	return Vertical
}
