package wbplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// AesMapping holds fixed aesthetics of a plotting call, e.g.
//     AesMapping{"label": "Education", "color": "#34A7F2", "size": "1.5"}
// Unset keys fall back to the panel's colour cycle and the theme.
type AesMapping map[string]string

// Copy returns a shallow copy of m.
func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, n := range m {
		c[a] = n
	}
	return c
}

// MergeStyles merges the given mappings. Earlier mappings win.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := AesMapping{}
	for _, am := range ams {
		for k, v := range am {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged
}

// String2Float parses s clamped to [low,high]. Unparsable input yields def.
func String2Float(s string, low, high, def float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid", "":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt for a line of width w.
func (lt LineType) Dashes(w vg.Length) []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{4 * w, 2 * w}
	case DottedLine:
		return []vg.Length{w, 2 * w}
	case DotDashLine:
		return []vg.Length{4 * w, 2 * w, w, 2 * w}
	case LongdashLine:
		return []vg.Length{8 * w, 2 * w}
	case TwodashLine:
		return []vg.Length{2 * w, 2 * w, 6 * w, 2 * w}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a builtin name.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("wbplot: unknown color %q", s)
	}
	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("wbplot: bad alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("wbplot: bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// String2Color is ParseColor for trusted input: unknown colors come out
// as a conspicuous translucent pink.
func String2Color(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
	}
	return c
}

// SetAlpha returns c with its opacity scaled by alpha in [0,1].
func SetAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// hex is a convenience for the static brand tables.
func hex(s string) color.Color { return String2Color(s) }

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// -------------------------------------------------------------------------
// Text

// TextStyle describes typography independent of a font face.
type TextStyle struct {
	Size        vg.Length
	Weight      xfont.Weight
	Color       color.Color
	LineSpacing float64
}

// apply copies ts onto the gonum text style s using the theme's typeface.
func (ts TextStyle) apply(s *text.Style, th Theme) {
	f := th.Font
	f.Size = s.Font.Size
	if ts.Size > 0 {
		f.Size = ts.Size
	}
	f.Weight = th.weight(ts.Weight)
	s.Font = f
	if ts.Color != nil {
		s.Color = ts.Color
	}
	if th.Fonts != nil {
		s.Handler = text.Plain{Fonts: th.Fonts}
	}
}

// gonum returns a fresh gonum text style for ts.
func (ts TextStyle) gonum(th Theme) text.Style {
	s := text.Style{
		Font:    font.Font{Size: 10},
		Color:   color.Black,
		XAlign:  draw.XLeft,
		YAlign:  draw.YBottom,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
	ts.apply(&s, th)
	return s
}
