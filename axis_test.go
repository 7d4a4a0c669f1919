package wbplot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

func styled(t *testing.T, p *Panel) Category {
	t.Helper()
	th := p.theme
	cat := ClassifyPanel(p)
	require.NoError(t, Styler{Theme: th}.Apply(p, cat, th.Sizes, th.Spacing))
	return cat
}

func refLines(p *Panel, role Role) []*RefLine {
	var refs []*RefLine
	for _, a := range p.Artifacts() {
		if r, ok := a.(*RefLine); ok && r.Role == role {
			refs = append(refs, r)
		}
	}
	return refs
}

func valueLabels(p *Panel) []string {
	var labels []string
	for _, a := range p.Artifacts() {
		if t, ok := a.(*Text); ok && t.Role == RoleValueLabel {
			labels = append(labels, t.Text)
		}
	}
	return labels
}

func TestStyleLineChart(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.X.Label = "Year"
	_, err := p.Plot([]float64{2000, 2010, 2020}, []float64{55, 65, 72}, nil)
	require.NoError(t, err)

	assert.Equal(t, LineChart, styled(t, p))
	assert.Equal(t, 0.0, p.Y.Min, "y axis floored at zero")
	assert.Greater(t, p.Y.Max, 72.0)
	zero := refLines(p, RoleZeroLine)
	require.Len(t, zero, 1)
	assert.Equal(t, Horizontal, zero[0].Orient)
	assert.Equal(t, 0.0, zero[0].At)
	assert.Empty(t, p.X.Label)
	assert.False(t, p.X.ShowGrid)
	assert.True(t, p.Y.ShowGrid)
	assert.Equal(t, xfont.WeightSemiBold, p.Y.LabelStyle.Weight)
}

func TestStyleLineChartNegative(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Plot([]float64{1, 2, 3}, []float64{-5, 2, 8}, nil)
	styled(t, p)
	assert.Less(t, p.Y.Min, -5.0, "negative data is not floored")
	assert.Len(t, refLines(p, RoleZeroLine), 1)
}

func TestStyleReleasesFloor(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Plot([]float64{1, 2, 3}, []float64{4, 6, 8}, nil)
	styled(t, p)
	require.Equal(t, 0.0, p.Y.Min)

	p.Plot([]float64{1, 2, 3}, []float64{-7, -1, 3}, nil)
	assert.Equal(t, LineChart, styled(t, p))
	assert.Less(t, p.Y.Min, -7.0, "negative data added later is not clipped")
	assert.Len(t, refLines(p, RoleZeroLine), 1)

	p = NewPanel(DefaultTheme())
	p.Plot([]float64{1, 2, 3}, []float64{14, 16, 18}, nil)
	p.Y.SetMin(10)
	styled(t, p)
	assert.Equal(t, 10.0, p.Y.Min, "user lower bound is kept")
}

func TestStyleVerticalBars(t *testing.T) {
	p := NewPanel(DefaultTheme())
	_, err := p.Bar([]string{"north", "south", "east"}, []float64{22, 30, 48}, nil)
	require.NoError(t, err)

	assert.Equal(t, Bar, styled(t, p))
	assert.Equal(t, []string{"22", "30", "48"}, valueLabels(p))
	zero := refLines(p, RoleZeroLine)
	require.Len(t, zero, 1)
	assert.Equal(t, Horizontal, zero[0].Orient)

	labels, err := p.X.TickLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"NORTH", "SOUTH", "EAST"}, labels)
	assert.Equal(t, xfont.WeightBold, p.X.TickLabelStyle.Weight)
	assert.Equal(t, p.theme.HairlineLength, p.X.TickLength)
	assert.Zero(t, p.Y.TickLength)
	assert.False(t, p.X.ShowGrid || p.Y.ShowGrid)
}

func TestStyleHorizontalBars(t *testing.T) {
	p := NewPanel(DefaultTheme())
	_, err := p.BarH([]string{"a", "b"}, []float64{40, -12}, nil)
	require.NoError(t, err)

	styled(t, p)
	zero := refLines(p, RoleZeroLine)
	require.Len(t, zero, 1)
	assert.Equal(t, Vertical, zero[0].Orient)
	assert.Equal(t, []string{"40", "-12"}, valueLabels(p))

	labels, err := p.Y.TickLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, labels)
}

func TestStyleScatter(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Scatter([]float64{-1, 0.5, 2}, []float64{-3, 1, 4}, nil)

	assert.Equal(t, Scatter, styled(t, p))
	zero := refLines(p, RoleZeroLine)
	require.Len(t, zero, 1)
	assert.Equal(t, Horizontal, zero[0].Orient)
	assert.Less(t, p.Y.Min, -3.0)
	assert.Equal(t, p.theme.Spacing.XXS, p.X.LabelPad)
}

func TestStyleScatterWithoutZero(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Scatter([]float64{1, 2}, []float64{10, 20}, nil)
	styled(t, p)
	assert.Empty(t, refLines(p, RoleZeroLine), "zero outside the view")
}

func TestStyleTimeSeries(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.X.Label = "Date"
	day := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := p.PlotTime([]time.Time{day, day.AddDate(1, 0, 0), day.AddDate(2, 0, 0)}, []float64{3, 4, 2}, nil)
	require.NoError(t, err)

	assert.Equal(t, TimeSeries, styled(t, p))
	assert.True(t, p.X.Hidden)
	assert.Empty(t, p.X.Ticks())
	assert.Empty(t, p.X.Label)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Empty(t, refLines(p, RoleZeroLine), "timeseries is not a default zero line category")

	th := DefaultTheme()
	th.ZeroLineCategories = append(th.ZeroLineCategories, TimeSeries)
	p = NewPanel(th)
	_, err = p.PlotTime([]time.Time{day, day.AddDate(1, 0, 0)}, []float64{3, 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, TimeSeries, styled(t, p))
	assert.Len(t, refLines(p, RoleZeroLine), 1)
}

func TestStyleIdempotent(t *testing.T) {
	day := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		draw  func(p *Panel)
		want  Category
		zeros int
	}{
		{"bar", func(p *Panel) { p.Bar([]string{"a", "b", "c"}, []float64{22, 30, 48}, nil) }, Bar, 1},
		{"line", func(p *Panel) { p.Plot([]float64{1, 2}, []float64{3, 4}, nil) }, LineChart, 1},
		{"scatter", func(p *Panel) { p.Scatter([]float64{-1, 1}, []float64{-1, 1}, nil) }, Scatter, 1},
		{"timeseries", func(p *Panel) {
			p.PlotTime([]time.Time{day, day.AddDate(1, 0, 0)}, []float64{3, 4}, nil)
		}, TimeSeries, 0},
		{"image", func(p *Panel) { p.ImShow([][]float64{{1, 2}, {3, 4}}) }, SingleNumeric, 0},
	}
	for _, tc := range tests {
		p := NewPanel(DefaultTheme())
		tc.draw(p)
		first := styled(t, p)
		assert.Equal(t, tc.want, first, tc.name)
		n := len(p.Artifacts())
		min, max := p.Y.Range()

		assert.Equal(t, first, styled(t, p), tc.name)
		assert.Equal(t, first, styled(t, p), tc.name)
		assert.Equal(t, first, ClassifyPanel(p), "%s: reclassified after styling", tc.name)
		assert.Len(t, p.Artifacts(), n, tc.name)
		assert.Len(t, refLines(p, RoleZeroLine), tc.zeros, tc.name)
		min2, max2 := p.Y.Range()
		assert.Equal(t, min, min2, tc.name)
		assert.Equal(t, max, max2, tc.name)
	}
}

func TestZeroLineCategories(t *testing.T) {
	th := DefaultTheme()
	th.ZeroLineCategories = []Category{Bar}
	th.FloorAtZero = false
	p := NewPanel(th)
	p.Plot([]float64{1, 2}, []float64{-3, 4}, nil)
	styled(t, p)
	assert.Empty(t, refLines(p, RoleZeroLine))
}

func TestStyleKeepsUserRefLines(t *testing.T) {
	p := NewPanel(DefaultTheme())
	p.Scatter([]float64{-1, 1}, []float64{-1, 1}, nil)
	p.HLine(0, nil)
	styled(t, p)
	assert.Len(t, refLines(p, RoleUser), 1)
	assert.Len(t, refLines(p, RoleZeroLine), 1)
}

func TestTickLabelMismatch(t *testing.T) {
	a := newAxis("x")
	a.Ticker = TidyTicker{Max: 5}
	a.SetRange(0, 20)

	labels, err := a.TickLabels()
	require.NoError(t, err)
	require.Len(t, labels, 5)

	err = a.SetTickLabels([]string{"one"})
	assert.True(t, errors.Is(err, ErrTickLabelMismatch), "got %v", err)

	require.NoError(t, a.SetTickLabels([]string{"a", "b", "c", "d", "e"}))
	a.SetRange(0, 3)
	_, err = a.TickLabels()
	assert.True(t, errors.Is(err, ErrTickLabelMismatch), "got %v", err)
}

func TestRoundedLabel(t *testing.T) {
	for v, want := range map[float64]string{
		22: "22", 29.6: "30", -0.3: "0", -12.5: "-13", 1e6: "1000000",
	} {
		if got := roundedLabel(v); got != want {
			t.Errorf("roundedLabel(%g) = %q, want %q", v, got, want)
		}
	}
}
