package wbplot

import (
	"math"
	"strconv"

	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Styler applies the brand ruleset of a Theme to panels.
type Styler struct {
	Theme  Theme
	Logger *zap.Logger
}

// StylePanel classifies p and styles it with the theme p was created
// with.
func StylePanel(p *Panel, sizes FontSizes, spacing Spacing) error {
	return Styler{Theme: p.theme}.StylePanel(p, sizes, spacing)
}

// StylePanel classifies p and applies the ruleset of its category.
func (s Styler) StylePanel(p *Panel, sizes FontSizes, spacing Spacing) error {
	return s.Apply(p, ClassifyPanel(p), sizes, spacing)
}

// Apply styles p as a chart of category cat. Styling is idempotent.
// An error leaves p partially styled.
func (s Styler) Apply(p *Panel, cat Category, sizes FontSizes, spacing Spacing) error {
	s.log().Debug("styling panel", zap.Stringer("category", cat))

	s.typography(p, sizes)
	s.grid(p)

	if cat == LineChart || cat == TimeSeries {
		s.floorAtZero(p)
	}
	if cat != Bar && s.Theme.zeroLineFor(cat) {
		s.zeroLine(p, Horizontal)
	}

	switch cat {
	case Scatter:
		s.scatter(p, spacing)
	case TimeSeries:
		s.timeSeries(p)
	case LineChart:
		s.line(p)
	case Bar:
		return s.bar(p, sizes, spacing)
	}
	return nil
}

func (s Styler) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// -------------------------------------------------------------------------
// Rules common to all categories

func (s Styler) typography(p *Panel, sizes FontSizes) {
	th := s.Theme
	label := TextStyle{Size: sizes.S, Weight: th.LabelWeight, Color: th.TextColor, LineSpacing: th.LineSpacing}
	tick := TextStyle{Size: sizes.S, Weight: th.TickLabelWeight, Color: th.SubtleColor, LineSpacing: th.LineSpacing}
	for _, a := range []*Axis{&p.X, &p.Y} {
		a.LabelStyle = label
		a.TickLabelStyle = tick
	}
}

func (s Styler) grid(p *Panel) {
	th := s.Theme
	grid := draw.LineStyle{Color: th.GridColor, Width: th.GridWidth, Dashes: th.GridDashes}
	for _, a := range []*Axis{&p.X, &p.Y} {
		a.ShowGrid = true
		a.Grid = grid
	}
	p.Y.TickLength = 0
}

func (s Styler) hairline() draw.LineStyle {
	return draw.LineStyle{Color: s.Theme.HairlineColor, Width: s.Theme.HairlineWidth}
}

// floorAtZero makes a linear Y axis start at zero unless the data
// itself goes negative. A floor set here is released once it does.
func (s Styler) floorAtZero(p *Panel) {
	if !s.Theme.FloorAtZero || p.Y.Scale != Linear {
		return
	}
	if min, ok := p.dataMinY(); ok && min < 0 {
		if p.Y.floored {
			p.Y.fixedMin, p.Y.floored = false, false
			p.Flush()
		}
		return
	}
	if p.Y.fixedMin && !p.Y.floored {
		return
	}
	p.Y.SetMin(0)
	p.Y.floored = true
	p.Flush()
}

// zeroLine draws the zero reference line perpendicular to the axis
// selected by o if zero is visible on a linear scale.
func (s Styler) zeroLine(p *Panel, o Orientation) {
	p.Flush()
	a := &p.Y
	if o == Vertical {
		a = &p.X
	}
	if a.Scale != Linear || a.Categorical() || !(a.Min <= 0 && 0 <= a.Max) {
		return
	}
	ls := draw.LineStyle{Color: s.Theme.ReferenceColor, Width: s.Theme.ReferenceWidth}
	p.AddRefLine(o, 0, RoleZeroLine, ls)
}

// -------------------------------------------------------------------------
// Category rules

func (s Styler) scatter(p *Panel, spacing Spacing) {
	for _, a := range []*Axis{&p.X, &p.Y} {
		a.LabelPad = spacing.XXS
		a.TickNudge = s.Theme.TickNudge
	}
	p.Y.TickLength = 0
	p.X.TickLength = s.Theme.HairlineLength
	p.X.TickStyle = s.hairline()
}

func (s Styler) timeSeries(p *Panel) {
	p.X.Label = ""
	p.X.Hidden = true
	p.X.ShowGrid = false
}

func (s Styler) line(p *Panel) {
	p.X.Label = ""
	p.X.TickNudge = s.Theme.TickNudge
	p.Y.TickNudge = s.Theme.TickNudge
	p.X.ShowGrid = false
}

func (s Styler) bar(p *Panel, sizes FontSizes, spacing Spacing) error {
	th := s.Theme
	d := Inspect(p)
	orient := DetectOrientation(d.RectGroups, th.BarAspectRatio)
	s.log().Debug("bar orientation", zap.Stringer("orientation", orient))

	cat, val, zero := &p.X, &p.Y, Horizontal
	if orient == Horizontal {
		cat, val, zero = &p.Y, &p.X, Vertical
	}
	p.X.ShowGrid = false
	p.Y.ShowGrid = false
	cat.TickLength = th.HairlineLength
	cat.TickStyle = s.hairline()
	val.TickLength = 0
	cat.TickLabelStyle.Weight = xfont.WeightBold

	err := upperTickLabels(cat)

	if th.zeroLineFor(Bar) {
		s.zeroLine(p, zero)
	}
	s.valueLabels(p, d.RectGroups, orient, sizes, spacing)
	return err
}

var upper = cases.Upper(language.Und)

// upperTickLabels uppercases the labels of a categorical axis.
func upperTickLabels(a *Axis) error {
	if !a.Categorical() {
		return nil
	}
	labels, err := a.TickLabels()
	if err != nil {
		return err
	}
	for i, l := range labels {
		labels[i] = upper.String(l)
	}
	return a.SetTickLabels(labels)
}

// valueLabels annotates each bar tip with its value. Labels from an
// earlier run are replaced.
func (s Styler) valueLabels(p *Panel, groups [][]*Rect, o Orientation, sizes FontSizes, spacing Spacing) {
	p.Remove(func(a Artifact) bool {
		t, ok := a.(*Text)
		return ok && t.Role == RoleValueLabel
	})
	style := TextStyle{Size: sizes.S, Weight: xfont.WeightBold, Color: s.Theme.TextColor}
	pad := spacing.XXS
	for _, g := range groups {
		for _, r := range g {
			t := &Text{Role: RoleValueLabel, Style: style}
			var v float64
			if o == Vertical {
				v = r.H
				t.X, t.Y = r.X+r.W/2, r.Y+r.H
				t.XAlign = text.XCenter
				if v >= 0 {
					t.Offset, t.YAlign = vg.Point{Y: pad}, text.YBottom
				} else {
					t.Offset, t.YAlign = vg.Point{Y: -pad}, text.YTop
				}
			} else {
				v = r.W
				t.X, t.Y = r.X+r.W, r.Y+r.H/2
				t.YAlign = text.YCenter
				if v >= 0 {
					t.Offset, t.XAlign = vg.Point{X: pad}, text.XLeft
				} else {
					t.Offset, t.XAlign = vg.Point{X: -pad}, text.XRight
				}
			}
			if !finite(v) {
				continue
			}
			t.Text = roundedLabel(v)
			p.Annotate(t)
		}
	}
}

// roundedLabel formats v rounded to the nearest integer.
func roundedLabel(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
