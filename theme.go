package wbplot

import (
	"fmt"
	"image/color"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
)

// FontSizes are the three type sizes of a figure.
type FontSizes struct {
	S, M, L vg.Length
}

// Spacing are the paddings of a figure, from smallest to largest.
type Spacing struct {
	XXS, XS, S, M, L, XL vg.Length
}

// SizesForWidth returns the type sizes and paddings for a figure
// width in pixels.
func SizesForWidth(width int) (FontSizes, Spacing) {
	switch {
	case width < 400:
		return FontSizes{12, 14, 16}, Spacing{2, 4, 6, 12, 14, 16}
	case width <= 700:
		return FontSizes{13, 15, 18}, Spacing{3, 6, 9, 15, 18, 21}
	}
	return FontSizes{14, 16, 20}, Spacing{4, 8, 12, 16, 20, 24}
}

// Theme is the brand definition applied by the styling engine. It is
// a plain value: copy and modify it to derive a variant.
type Theme struct {
	Sizes   FontSizes
	Spacing Spacing

	// Font is the typeface; its size and weight are set per element.
	Font font.Font
	// Fonts resolves Font. Nil uses gonum's default cache.
	Fonts *font.Cache
	// ExactWeights keeps semibold and medium weights; otherwise weights
	// above medium render bold and the rest regular.
	ExactWeights bool

	Background  color.Color
	TextColor   color.Color // titles, axis labels, value labels
	SubtleColor color.Color // subtitles, tick labels
	LineSpacing float64

	LabelWeight     xfont.Weight
	TickLabelWeight xfont.Weight

	GridColor  color.Color
	GridWidth  vg.Length
	GridDashes []vg.Length

	ReferenceColor color.Color
	ReferenceWidth vg.Length

	HairlineColor  color.Color
	HairlineWidth  vg.Length
	HairlineLength vg.Length

	TickNudge vg.Length

	// BarAspectRatio is how much wider than tall bars must be on
	// average to count as horizontal.
	BarAspectRatio float64
	// ZeroLineCategories get a zero reference line.
	ZeroLineCategories []Category
	// FloorAtZero forces line and time series charts to start at zero
	// unless their data is negative.
	FloorAtZero bool
	// MaxTicks bounds the number of tidy ticks.
	MaxTicks int

	Cycle []color.Color

	// Default aesthetics of the plotting calls.
	PointStyle, LineStyle, BarStyle AesMapping
}

// defaultCycle is the brand colour cycle.
var defaultCycle = []string{
	"#34A7F2", "#FF9800", "#664AB6", "#4EC2C0", "#F3578E",
	"#081079", "#0C7C68", "#AA0000", "#DDDA21",
}

// DefaultTheme returns the brand theme for a 600 pixel wide figure.
func DefaultTheme() Theme {
	return ThemeForWidth(600)
}

// ThemeForWidth returns the brand theme with sizes chosen for a figure
// width in pixels.
func ThemeForWidth(width int) Theme {
	sizes, spacing := SizesForWidth(width)
	cycle := make([]color.Color, len(defaultCycle))
	for i, h := range defaultCycle {
		cycle[i] = hex(h)
	}
	return Theme{
		Sizes:   sizes,
		Spacing: spacing,

		Font: font.Font{Typeface: "Liberation", Variant: "Sans"},

		Background:  color.White,
		TextColor:   hex("#111111"),
		SubtleColor: hex("#666666"),
		LineSpacing: 1.2,

		LabelWeight:     xfont.WeightSemiBold,
		TickLabelWeight: xfont.WeightNormal,

		GridColor:  hex("#CED4DE"),
		GridWidth:  1,
		GridDashes: []vg.Length{4, 2},

		ReferenceColor: hex("#8A969F"),
		ReferenceWidth: 1,

		HairlineColor:  hex("#CED4DE"),
		HairlineWidth:  0.8,
		HairlineLength: 3.5,

		TickNudge: 2,

		BarAspectRatio:     2.5,
		ZeroLineCategories: []Category{Scatter, Bar, LineChart},
		FloorAtZero:        true,
		MaxTicks:           5,

		Cycle: cycle,

		PointStyle: AesMapping{"size": "3"},
		LineStyle:  AesMapping{"size": "2", "linetype": "solid"},
		BarStyle:   AesMapping{"width": "0.8"},
	}
}

func (th Theme) zeroLineFor(c Category) bool {
	for _, z := range th.ZeroLineCategories {
		if z == c {
			return true
		}
	}
	return false
}

// weight maps w onto the weights the typeface provides.
func (th Theme) weight(w xfont.Weight) xfont.Weight {
	if th.ExactWeights {
		return w
	}
	if w > xfont.WeightMedium {
		return xfont.WeightBold
	}
	return xfont.WeightNormal
}

// WithFontFiles returns a copy of th drawing text in the typeface read
// from the given TrueType or OpenType files, keyed by weight.
func (th Theme) WithFontFiles(typeface string, files map[xfont.Weight]string) (Theme, error) {
	coll := liberation.Collection()
	for w, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return th, fmt.Errorf("reading font: %w", err)
		}
		f, err := opentype.Parse(raw)
		if err != nil {
			return th, fmt.Errorf("parsing font %s: %w", path, err)
		}
		coll = append(coll, font.Face{
			Font: font.Font{Typeface: font.Typeface(typeface), Weight: w},
			Face: f,
		})
	}
	th.Fonts = font.NewCache(coll)
	th.Font = font.Font{Typeface: font.Typeface(typeface)}
	return th, nil
}
