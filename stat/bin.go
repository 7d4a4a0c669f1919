// Package stat computes the bin edges of binned colour scales.
package stat

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Mode selects how bin edges are spaced.
type Mode int

const (
	Linear   Mode = iota // equal width bins
	Quantile             // bins holding equal shares of the data
)

func (m Mode) String() string {
	if m == Quantile {
		return "quantile"
	}
	return "linear"
}

// ParseMode parses "linear" or "quantile". The empty string is Linear.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "quantile":
		return Quantile, nil
	}
	return Linear, fmt.Errorf("stat: unknown bin mode %q", s)
}

// ErrDegenerate is returned when data cannot be binned: no finite
// values, a single distinct value or fewer than one bin.
var ErrDegenerate = errors.New("stat: degenerate data for binning")

// Edges returns n+1 increasing bin edges covering the finite values of
// data.
func Edges(data []float64, n int, mode Mode) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%d bins: %w", n, ErrDegenerate)
	}
	vals := Finite(data)
	if len(vals) == 0 {
		return nil, fmt.Errorf("no finite values: %w", ErrDegenerate)
	}
	sort.Float64s(vals)
	min, max := vals[0], vals[len(vals)-1]
	if min == max {
		return nil, fmt.Errorf("all values equal %g: %w", min, ErrDegenerate)
	}

	edges := make([]float64, n+1)
	switch mode {
	case Quantile:
		for i := range edges {
			edges[i] = quantile(vals, float64(i)/float64(n))
		}
	default:
		w := (max - min) / float64(n)
		for i := range edges {
			edges[i] = min + float64(i)*w
		}
		edges[n] = max
	}
	return edges, nil
}

// quantile interpolates linearly between the order statistics of the
// sorted values, placing p=0 on the first and p=1 on the last value.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := math.Floor(pos)
	i := int(lo)
	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - lo
	return sorted[i] + frac*(sorted[i+1]-sorted[i])
}

// Finite returns the finite values of data.
func Finite(data []float64) []float64 {
	vals := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	return vals
}

// Centers returns the midpoints of consecutive edges.
func Centers(edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	c := make([]float64, len(edges)-1)
	for i := range c {
		c[i] = (edges[i] + edges[i+1]) / 2
	}
	return c
}
