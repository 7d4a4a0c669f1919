package wbplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// tidySteps are the admissible tick steps per power of ten.
var tidySteps = []float64{1, 2, 2.5, 5, 10}

// TidyTicker places at most Max ticks at multiples of a nice step.
// Labels are rounded integers, so steps are whole numbers and a range
// holding no integer gets no ticks.
type TidyTicker struct {
	Max int
}

var _ plot.Ticker = TidyTicker{}

// Ticks implements plot.Ticker. All ticks are major and labelled.
func (t TidyTicker) Ticks(min, max float64) []plot.Tick {
	n := t.Max
	if n < 1 {
		n = 5
	}
	if !finite(min) || !finite(max) || min > max {
		return nil
	}
	if min == max {
		if min != math.Trunc(min) {
			return nil
		}
		return []plot.Tick{{Value: min, Label: TidyLabel(min)}}
	}

	const eps = 1e-9
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n))))
	if mag < 1 {
		mag = 1
	}
	for pass := 0; pass < 3; pass++ {
		for _, s := range tidySteps {
			step := s * mag
			if step != math.Trunc(step) {
				continue
			}
			lo := math.Ceil(min/step - eps)
			hi := math.Floor(max/step + eps)
			count := int(hi-lo) + 1
			if count < 1 || count > n {
				continue
			}
			ticks := make([]plot.Tick, count)
			for i := range ticks {
				v := clean((lo + float64(i)) * step)
				ticks[i] = plot.Tick{Value: v, Label: TidyLabel(v)}
			}
			return ticks
		}
		mag *= 10
	}
	return nil
}

// TidyLabel formats a tick value: non-negative values as rounded
// integers, negative values unchanged.
func TidyLabel(v float64) string {
	if v < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return roundedLabel(v)
}

// TidyTicks installs a TidyTicker on each linear numeric axis of p
// that shows at least one positive tick. Categorical, time, log and
// hidden axes are left alone, as are ranges without an integer in
// them. Run it after styling.
func TidyTicks(p *Panel) {
	max := p.theme.MaxTicks
	if max < 1 {
		max = 5
	}
	p.Flush()
	tidyAxis(&p.X, max)
	tidyAxis(&p.Y, max)
}

func tidyAxis(a *Axis, max int) {
	if a.Hidden || a.Categorical() || a.Time || a.Scale != Linear {
		return
	}
	positive := false
	for _, t := range a.Ticks() {
		if t.Value > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return
	}
	tt := TidyTicker{Max: max}
	if len(tt.Ticks(a.Min, a.Max)) == 0 {
		return
	}
	a.Ticker = tt
	a.tickLabels = nil
}
