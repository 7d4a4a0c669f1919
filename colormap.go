package wbplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"

	"github.com/vdobler/wbplot/stat"
)

// Colormap maps [0,1] to colours. A continuous colormap interpolates
// linearly in RGB between evenly spaced anchors; a listed one has one
// colour per equally wide interval.
type Colormap struct {
	Name   string
	colors []colorful.Color
	listed bool
}

func toColorful(cs []color.Color) []colorful.Color {
	out := make([]colorful.Color, len(cs))
	for i, c := range cs {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf
	}
	return out
}

// NewColormap returns a continuous colormap through the given anchors.
func NewColormap(name string, anchors []color.Color) (*Colormap, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("wbplot: colormap %q without colours", name)
	}
	return &Colormap{Name: name, colors: toColorful(anchors)}, nil
}

// NewListedColormap returns a discrete colormap.
func NewListedColormap(name string, colors []color.Color) (*Colormap, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("wbplot: colormap %q without colours", name)
	}
	return &Colormap{Name: name, colors: toColorful(colors), listed: true}, nil
}

// Len is the number of anchors or listed colours.
func (cm *Colormap) Len() int { return len(cm.colors) }

// Listed reports whether cm is discrete.
func (cm *Colormap) Listed() bool { return cm.listed }

// At returns the colour at t, clamped to [0,1]. NaN is transparent.
func (cm *Colormap) At(t float64) color.Color {
	if math.IsNaN(t) {
		return color.Transparent
	}
	t = math.Max(0, math.Min(1, t))
	n := len(cm.colors)
	if cm.listed {
		i := int(t * float64(n))
		if i == n {
			i--
		}
		return clamped(cm.colors[i])
	}
	if n == 1 {
		return clamped(cm.colors[0])
	}
	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return clamped(cm.colors[n-1])
	}
	return clamped(cm.colors[i].BlendRgb(cm.colors[i+1], pos-float64(i)))
}

func clamped(c colorful.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Palette samples n evenly spaced colours for gonum's heat maps. A
// listed colormap yields its colours unchanged for n <= 0.
func (cm *Colormap) Palette(n int) palette.Palette {
	if n <= 0 {
		n = len(cm.colors)
		if !cm.listed {
			n = 256
		}
	}
	cs := make(colorList, n)
	for i := range cs {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		if cm.listed {
			t = (float64(i) + 0.5) / float64(n)
		}
		cs[i] = cm.At(t)
	}
	return cs
}

type colorList []color.Color

func (l colorList) Colors() []color.Color { return l }

// -------------------------------------------------------------------------
// Binned colormaps

// BoundaryNorm maps values to the index of the bin that contains them.
type BoundaryNorm struct {
	Edges []float64
}

// Bins is the number of bins.
func (bn *BoundaryNorm) Bins() int { return len(bn.Edges) - 1 }

// Bin returns the index of the bin of v. Values outside the edges are
// clipped to the first or last bin; NaN yields -1.
func (bn *BoundaryNorm) Bin(v float64) int {
	n := bn.Bins()
	if math.IsNaN(v) || n < 1 {
		return -1
	}
	i := sort.SearchFloat64s(bn.Edges, v)
	// SearchFloat64s finds the first edge >= v; bins are [e_i, e_i+1).
	if i < len(bn.Edges) && bn.Edges[i] == v {
		i++
	}
	i--
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Bins configures a binned colour scale: either Count bins with edges
// computed by Mode, or explicit Edges.
type Bins struct {
	Count int
	Edges []float64
	Mode  stat.Mode
}

// IsSet reports whether binning was requested.
func (b Bins) IsSet() bool { return b.Count > 0 || len(b.Edges) > 0 }

// ErrNoData is returned when an operation needs finite data but found
// none.
var ErrNoData = errors.New("wbplot: no usable data")

// BinnedColormap builds a listed colormap with one colour per bin,
// sampled from cm at the normalised bin centres, and the matching norm. Count
// based edges are computed over all finite values of the images.
func BinnedColormap(cm *Colormap, images []*Image, bins Bins) (*Colormap, *BoundaryNorm, error) {
	edges := bins.Edges
	if len(edges) == 0 {
		var all []float64
		for _, img := range images {
			for _, row := range img.Data {
				all = append(all, row...)
			}
		}
		var err error
		edges, err = stat.Edges(all, bins.Count, bins.Mode)
		if err != nil {
			return nil, nil, fmt.Errorf("binning %s: %v: %w", cm.Name, err, ErrNoData)
		}
	}
	if len(edges) < 2 || !sort.Float64sAreSorted(edges) {
		return nil, nil, fmt.Errorf("binning %s: need at least two increasing edges: %w", cm.Name, ErrNoData)
	}
	if edges[0] == edges[len(edges)-1] {
		return nil, nil, fmt.Errorf("binning %s: empty range: %w", cm.Name, ErrNoData)
	}
	// The first bin takes the lowest and the last bin the highest colour.
	centers := stat.Centers(edges)
	lo, hi := centers[0], centers[len(centers)-1]
	colors := make([]color.Color, len(centers))
	for i, c := range centers {
		t := 0.0
		if hi > lo {
			t = (c - lo) / (hi - lo)
		}
		colors[i] = cm.At(t)
	}
	listed, err := NewListedColormap(cm.Name+"_binned", colors)
	if err != nil {
		return nil, nil, err
	}
	return listed, &BoundaryNorm{Edges: append([]float64(nil), edges...)}, nil
}
