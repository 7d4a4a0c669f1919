package wbplot

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/wbplot/stat"
)

func grey(v uint8) color.Color { return color.NRGBA{v, v, v, 0xff} }

func TestColormapAt(t *testing.T) {
	cm, err := NewColormap("grey", []color.Color{grey(0), grey(200)})
	require.NoError(t, err)

	assert.True(t, sameColor(grey(0), cm.At(0)))
	assert.True(t, sameColor(grey(200), cm.At(1)))
	assert.True(t, sameColor(grey(100), cm.At(0.5)))
	assert.True(t, sameColor(grey(200), cm.At(7)), "clamped")
	assert.Equal(t, color.Transparent, cm.At(math.NaN()))
	assert.Len(t, cm.Palette(0).Colors(), 256)

	listed, err := NewListedColormap("three", []color.Color{grey(0), grey(100), grey(200)})
	require.NoError(t, err)
	assert.True(t, sameColor(grey(0), listed.At(0.2)))
	assert.True(t, sameColor(grey(100), listed.At(0.5)))
	assert.True(t, sameColor(grey(200), listed.At(1)))
	pal := listed.Palette(0).Colors()
	require.Len(t, pal, 3)
	assert.True(t, sameColor(grey(100), pal[1]))

	_, err = NewColormap("none", nil)
	assert.Error(t, err)
}

func TestBoundaryNorm(t *testing.T) {
	bn := &BoundaryNorm{Edges: []float64{0, 10, 20, 30}}
	tests := []struct {
		v    float64
		want int
	}{
		{-5, 0}, {0, 0}, {9.9, 0}, {10, 1}, {25, 2}, {30, 2}, {99, 2}, {math.NaN(), -1},
	}
	for _, tc := range tests {
		if got := bn.Bin(tc.v); got != tc.want {
			t.Errorf("Bin(%g) = %d, want %d", tc.v, got, tc.want)
		}
	}
	assert.Equal(t, 3, bn.Bins())
}

func TestBinnedColormap(t *testing.T) {
	cm, _ := NewColormap("grey", []color.Color{grey(0), grey(200)})

	listed, norm, err := BinnedColormap(cm, nil, Bins{Edges: []float64{0, 1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, 3, listed.Len())
	assert.True(t, listed.Listed())
	pal := listed.Palette(0).Colors()
	assert.True(t, sameColor(grey(0), pal[0]), "first bin takes the lowest colour")
	assert.True(t, sameColor(grey(100), pal[1]))
	assert.True(t, sameColor(grey(200), pal[2]), "last bin takes the highest colour")
	assert.Equal(t, []float64{0, 1, 2, 3}, norm.Edges)

	img := &Image{Data: [][]float64{{0, 1, 2, 3, 4}, {5, 6, 7, 8, math.NaN()}}}
	_, norm, err = BinnedColormap(cm, []*Image{img}, Bins{Count: 4, Mode: stat.Linear})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, norm.Edges)

	flat := &Image{Data: [][]float64{{3, 3}}}
	_, _, err = BinnedColormap(cm, []*Image{flat}, Bins{Count: 4})
	assert.True(t, errors.Is(err, ErrNoData), "got %v", err)

	_, _, err = BinnedColormap(cm, nil, Bins{Edges: []float64{2, 1}})
	assert.True(t, errors.Is(err, ErrNoData), "got %v", err)
}
