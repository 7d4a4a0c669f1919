package wbplot

import (
	"image/color"
	"testing"
)

func TestString2Color(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{" blue ", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"nonsens", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
		{"#12", color.NRGBA{0xaa, 0x66, 0x77, 0x7f}},
	}

	for i, tc := range tests {
		got := String2Color(tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	c := SetAlpha(color.NRGBA{0x10, 0x20, 0x30, 0xff}, 0.5)
	if n := c.(color.NRGBA); n.A != 0x80 || n.R != 0x10 {
		t.Errorf("Got %v", n)
	}
	if SetAlpha(color.White, 1) != color.White {
		t.Errorf("Full alpha changed color")
	}
}

func TestString2Float(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"0.5", 0.5},
		{"50%", 0.5},
		{"7", 1},
		{"-3", 0},
		{"bogus", 0.25},
	}
	for _, tc := range tests {
		if got := String2Float(tc.s, 0, 1, 0.25); got != tc.want {
			t.Errorf("String2Float(%q) = %g, want %g", tc.s, got, tc.want)
		}
	}
}

func TestLineTypes(t *testing.T) {
	for s, want := range map[string]LineType{
		"":        SolidLine,
		"dashed":  DashedLine,
		"twodash": TwodashLine,
		"8":       SolidLine,
		"wiggly":  BlankLine,
	} {
		if got := String2LineType(s); got != want {
			t.Errorf("String2LineType(%q) = %d, want %d", s, got, want)
		}
	}
	if d := DashedLine.Dashes(2); len(d) != 2 || d[0] != 8 {
		t.Errorf("Got dashes %v", d)
	}
	if SolidLine.Dashes(1) != nil {
		t.Errorf("Solid line has dashes")
	}
}

func TestMergeStyles(t *testing.T) {
	m := MergeStyles(AesMapping{"color": "red"}, nil, AesMapping{"color": "blue", "size": "3"})
	if m["color"] != "red" || m["size"] != "3" || len(m) != 2 {
		t.Errorf("Got %v", m)
	}
}
