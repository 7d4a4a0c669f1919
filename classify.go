package wbplot

import "fmt"

// Category is the coarse chart type that selects a styling ruleset.
type Category int

const (
	SingleNumeric Category = iota
	Scatter
	LineChart
	TimeSeries
	Bar
)

var categoryNames = map[Category]string{
	SingleNumeric: "single_numeric",
	Scatter:       "scatter",
	LineChart:     "line",
	TimeSeries:    "timeseries",
	Bar:           "bar",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return SingleNumeric, fmt.Errorf("wbplot: unknown chart category %q", s)
}

// Classify maps a descriptor to its category. Lines win over points,
// points over rectangles; anything else is SingleNumeric.
func Classify(d Descriptor) Category {
	switch {
	case d.HasLine && d.LineIsTime:
		return TimeSeries
	case d.HasLine:
		return LineChart
	case d.HasPoints:
		return Scatter
	case d.HasRects():
		return Bar
	}
	return SingleNumeric
}

// ClassifyPanel returns the category of the artifacts drawn into p.
func ClassifyPanel(p *Panel) Category {
	if p == nil {
		return SingleNumeric
	}
	return Classify(Inspect(p))
}
