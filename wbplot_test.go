package wbplot

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/wbplot/stat"
)

func TestNewDefaults(t *testing.T) {
	f, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, 600, f.Width)
	assert.Equal(t, 500, f.Height)
	assert.Equal(t, 100.0, f.DPI)
	assert.Len(t, f.Panels, 1)
	assert.NotNil(t, f.Panel(0, 0))
	assert.Nil(t, f.Panel(1, 0))
	assert.Nil(t, f.Palette().Cycle)

	th := DefaultTheme()
	th.Sizes, th.Spacing = FontSizes{}, Spacing{}
	f, err = New(Options{Width: 300, Rows: 2, Cols: 3, Theme: &th})
	require.NoError(t, err)
	assert.Len(t, f.Panels, 6)
	assert.Equal(t, vg.Length(12), f.Theme.Sizes.S, "sizes for narrow figures")
	assert.NotNil(t, f.Panel(1, 2))

	_, err = New(Options{Palette: "rainbow"})
	assert.True(t, errors.Is(err, ErrUnknownPalette))
}

func TestPlotPipeline(t *testing.T) {
	f, err := Plot(Options{Palette: "wb_categorical"}, func(ps []*Panel) error {
		ps[0].Plot([]float64{2000, 2010, 2020}, []float64{55, 65, 72}, AesMapping{"label": "East"})
		ps[0].Plot([]float64{2000, 2010, 2020}, []float64{50, 52, 58}, AesMapping{"label": "West"})
		return nil
	})
	require.NoError(t, err)

	p := f.Panels[0]
	lines := 0
	for _, a := range p.Artifacts() {
		if l, ok := a.(*Line); ok {
			assert.True(t, sameColor(f.Palette().Cycle[lines], l.Color))
			lines++
		}
	}
	assert.Equal(t, 2, lines)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Len(t, refLines(p, RoleZeroLine), 1)
	require.Len(t, f.Legend, 2)
	assert.Equal(t, "East", f.Legend[0].Label)

	n := len(p.Artifacts())
	f.Finish()
	assert.Len(t, p.Artifacts(), n, "finishing twice adds nothing")
}

func TestPlotSingleSeriesHasNoLegend(t *testing.T) {
	f, err := Plot(Options{}, func(ps []*Panel) error {
		_, err := ps[0].Bar([]string{"a", "b", "c"}, []float64{22, 30, 48}, AesMapping{"label": "Sales"})
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, f.Legend)
	assert.Equal(t, []string{"22", "30", "48"}, valueLabels(f.Panels[0]))
}

func TestPlotErrors(t *testing.T) {
	_, err := Plot(Options{}, nil)
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = Plot(Options{}, func([]*Panel) error { return boom })
	assert.True(t, errors.Is(err, boom))

	_, err = Plot(Options{}, func(ps []*Panel) error {
		_, err := ps[0].Plot([]float64{1, 2}, []float64{1}, nil)
		return err
	})
	assert.True(t, errors.Is(err, ErrLength))
}

func TestPaletteBins(t *testing.T) {
	f, err := Plot(Options{
		Palette:     "wb_seq_bad_to_good",
		PaletteBins: Bins{Count: 3, Mode: stat.Linear},
	}, func(ps []*Panel) error {
		ps[0].ImShow([][]float64{{0, 1, 2}, {3, 4, math.NaN()}, {6, 7, 9}})
		return nil
	})
	require.NoError(t, err)
	img := f.Images()[0]
	require.NotNil(t, img.Norm)
	assert.Equal(t, []float64{0, 3, 6, 9}, img.Norm.Edges)
	assert.True(t, img.Colormap.Listed())
	assert.Equal(t, 3, img.Colormap.Len())
	assert.Equal(t, SingleNumeric, ClassifyPanel(f.Panels[0]))
}

func TestPaletteBinsFallBack(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	f, err := Plot(Options{
		Palette:     "wb_seq_bad_to_good",
		PaletteBins: Bins{Count: 3},
		Logger:      zap.New(core),
	}, func(ps []*Panel) error {
		ps[0].ImShow([][]float64{{5, 5}, {5, 5}})
		return nil
	})
	require.NoError(t, err)
	img := f.Images()[0]
	assert.Nil(t, img.Norm)
	assert.False(t, img.Colormap.Listed())
	assert.Equal(t, 1, logs.FilterMessage("keeping continuous colormap").Len())
}

func TestLabelMapPalette(t *testing.T) {
	f, err := Plot(Options{Palette: "wb_region"}, func(ps []*Panel) error {
		ps[0].Plot([]float64{1, 2}, []float64{1, 2}, AesMapping{"label": "NAC"})
		ps[0].Plot([]float64{1, 2}, []float64{2, 3}, AesMapping{"label": "SAS"})
		ps[0].Text(1, 1, "NAC", nil)
		return nil
	})
	require.NoError(t, err)
	arts := f.Panels[0].Artifacts()
	assert.True(t, sameColor(hex("#34A7F2"), arts[0].(*Line).Color))
	assert.True(t, sameColor(hex("#4EC2C0"), arts[1].(*Line).Color))
	assert.True(t, sameColor(hex("#106CA1"), arts[2].(*Text).Style.Color))
}
