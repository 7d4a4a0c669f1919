package wbplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrTickLabelMismatch is returned when a tick label override does not
// have exactly one label per tick.
var ErrTickLabelMismatch = errors.New("wbplot: number of tick labels does not match number of ticks")

// ScaleMode is the transformation of an axis.
type ScaleMode int

const (
	Linear ScaleMode = iota
	Log
)

func (m ScaleMode) String() string {
	if m == Log {
		return "log"
	}
	return "linear"
}

// Axis is one axis of a Panel.
type Axis struct {
	Name string // "x" or "y"

	Scale ScaleMode

	// Min and Max are the visible range. They are recomputed by Flush
	// unless fixed with SetMin, SetMax or SetRange.
	Min, Max           float64
	fixedMin, fixedMax bool
	floored            bool // fixedMin was set by floorAtZero

	// Time marks an axis whose values are Unix seconds.
	Time bool

	// Ticker computes tick positions of a numeric axis. Nil selects
	// gonum's default ticker for the scale.
	Ticker plot.Ticker

	// Hidden suppresses ticks and tick labels.
	Hidden bool

	Label          string
	LabelStyle     TextStyle
	LabelPad       vg.Length
	TickLabelStyle TextStyle

	// TickNudge moves tick labels closer to the axis.
	TickNudge vg.Length

	TickLength vg.Length
	TickStyle  draw.LineStyle

	ShowGrid bool
	Grid     draw.LineStyle

	categories *StringPool
	tickLabels []string
}

func newAxis(name string) Axis {
	return Axis{
		Name:       name,
		TickLength: vg.Points(3.5),
		TickStyle:  draw.LineStyle{Color: color.Black, Width: vg.Points(0.8)},
	}
}

// SetMin fixes the lower bound of the visible range.
func (a *Axis) SetMin(v float64) { a.Min, a.fixedMin, a.floored = v, true, false }

// SetMax fixes the upper bound of the visible range.
func (a *Axis) SetMax(v float64) { a.Max, a.fixedMax = v, true }

// SetRange fixes both bounds.
func (a *Axis) SetRange(min, max float64) {
	a.SetMin(min)
	a.SetMax(max)
}

// ClearRange returns both bounds to autoscaling.
func (a *Axis) ClearRange() { a.fixedMin, a.fixedMax, a.floored = false, false, false }

// Range returns the visible range. Call Panel.Flush first for
// autoscaled axes.
func (a *Axis) Range() (min, max float64) { return a.Min, a.Max }

// Categorical reports whether the axis positions are category levels.
func (a *Axis) Categorical() bool { return a.categories.Len() > 0 }

// Categories returns the category levels in axis order.
func (a *Axis) Categories() []string { return a.categories.Elements() }

// category returns the position of level s, registering it if new.
func (a *Axis) category(s string) float64 {
	if a.categories == nil {
		a.categories = NewStringPool()
	}
	return float64(a.categories.Add(s))
}

// Ticks returns the major and minor ticks of a in the visible range.
// Hidden axes have no ticks.
func (a *Axis) Ticks() []plot.Tick {
	if a.Hidden {
		return nil
	}
	var ticks []plot.Tick
	if a.Categorical() {
		for i, level := range a.categories.Elements() {
			ticks = append(ticks, plot.Tick{Value: float64(i), Label: level})
		}
	} else {
		if !(a.Min < a.Max) {
			return nil
		}
		ticks = a.ticker().Ticks(a.Min, a.Max)
	}
	if len(a.tickLabels) == countMajor(ticks) {
		j := 0
		for i := range ticks {
			if ticks[i].IsMinor() {
				continue
			}
			ticks[i].Label = a.tickLabels[j]
			j++
		}
	}
	return ticks
}

func (a *Axis) ticker() plot.Ticker {
	if a.Ticker != nil {
		return a.Ticker
	}
	switch {
	case a.Scale == Log:
		return plot.LogTicks{Prec: -1}
	case a.Time:
		return plot.TimeTicks{Format: "2006"}
	}
	return plot.DefaultTicks{}
}

// TickLabels returns the labels of the major ticks. It fails if an
// override set with SetTickLabels no longer matches the ticks.
func (a *Axis) TickLabels() ([]string, error) {
	ticks := a.Ticks()
	n := countMajor(ticks)
	if a.tickLabels != nil && len(a.tickLabels) != n {
		return nil, fmt.Errorf("%s axis has %d ticks but %d labels: %w",
			a.Name, n, len(a.tickLabels), ErrTickLabelMismatch)
	}
	labels := make([]string, 0, n)
	for _, t := range ticks {
		if !t.IsMinor() {
			labels = append(labels, t.Label)
		}
	}
	return labels, nil
}

// SetTickLabels overrides the labels of the major ticks.
func (a *Axis) SetTickLabels(labels []string) error {
	n := countMajor(a.Ticks())
	if len(labels) != n {
		return fmt.Errorf("%s axis has %d ticks, got %d labels: %w",
			a.Name, n, len(labels), ErrTickLabelMismatch)
	}
	a.tickLabels = append([]string(nil), labels...)
	return nil
}

func countMajor(ticks []plot.Tick) int {
	n := 0
	for _, t := range ticks {
		if !t.IsMinor() {
			n++
		}
	}
	return n
}

// -------------------------------------------------------------------------
// Panel

// Panel is a single plotting area: two axes and the artifacts drawn
// into it.
type Panel struct {
	X, Y Axis

	artifacts []Artifact
	theme     Theme
	cycle     []color.Color
	next      int
	group     int
}

// NewPanel returns an empty panel. Plotting calls take their default
// aesthetics and colour cycle from th.
func NewPanel(th Theme) *Panel {
	return &Panel{
		X:     newAxis("x"),
		Y:     newAxis("y"),
		theme: th,
		cycle: th.Cycle,
	}
}

// Artifacts returns the panel's artifacts in drawing order.
func (p *Panel) Artifacts() []Artifact {
	return append([]Artifact(nil), p.artifacts...)
}

// Add appends a to the panel.
func (p *Panel) Add(a Artifact) {
	p.artifacts = append(p.artifacts, a)
}

// Remove drops all artifacts for which drop returns true and reports
// how many were removed.
func (p *Panel) Remove(drop func(Artifact) bool) int {
	kept := p.artifacts[:0]
	for _, a := range p.artifacts {
		if !drop(a) {
			kept = append(kept, a)
		}
	}
	n := len(p.artifacts) - len(kept)
	for i := len(kept); i < len(p.artifacts); i++ {
		p.artifacts[i] = nil
	}
	p.artifacts = kept
	return n
}

// AddRefLine adds a reference line unless one with the same orientation,
// position and role exists, in which case that one is returned.
func (p *Panel) AddRefLine(o Orientation, at float64, role Role, style draw.LineStyle) *RefLine {
	for _, a := range p.artifacts {
		if r, ok := a.(*RefLine); ok && r.Orient == o && r.At == at && r.Role == role {
			return r
		}
	}
	r := &RefLine{Orient: o, At: at, Role: role, Style: style}
	p.Add(r)
	return r
}

// Annotate adds a text annotation.
func (p *Panel) Annotate(t *Text) {
	p.Add(t)
}

// SetCycle replaces the colour cycle and restarts it.
func (p *Panel) SetCycle(cycle []color.Color) {
	p.cycle = cycle
	p.next = 0
}

// nextColor returns the next colour of the cycle.
func (p *Panel) nextColor() color.Color {
	if len(p.cycle) == 0 {
		return color.Black
	}
	c := p.cycle[p.next%len(p.cycle)]
	p.next++
	return c
}

func (p *Panel) nextGroup() int {
	g := p.group
	p.group++
	return g
}
