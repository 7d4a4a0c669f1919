package wbplot

import (
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"the quick brown fox", 10, "the quick\nbrown fox"},
		{"  a   b ", 5, "a b"},
		{"abcdefghij", 4, "abcd\nefgh\nij"},
		{"ab cdefgh", 4, "ab c\ndefg\nh"},
		{"no limit here", 0, "no limit here"},
		{"", 10, ""},
		{"grüße aus zürich", 5, "grüße\naus z\nürich"},
	}
	for _, tc := range tests {
		if got := Wrap(tc.s, tc.width); got != tc.want {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tc.s, tc.width, got, tc.want)
		}
	}
}

func TestWrapLineLength(t *testing.T) {
	s := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, line := range strings.Split(Wrap(s, titleWrap), "\n") {
		if len(line) > titleWrap {
			t.Errorf("Line of %d characters: %q", len(line), line)
		}
	}
}

func TestBottomMargin(t *testing.T) {
	const xl = 10
	tests := []struct {
		xlabel, legend, notes bool
		noteMargin            vg.Length
		want                  vg.Length
	}{
		{false, false, false, 20, 20},
		{true, false, false, 20, 40},
		{false, true, false, 20, 70},
		{true, true, false, 20, 90},
		{false, true, true, 30, 100},
		{false, false, true, 30, 50},
	}
	for i, tc := range tests {
		got := bottomMargin(tc.xlabel, tc.legend, tc.notes, tc.noteMargin, xl)
		if got != tc.want {
			t.Errorf("%d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestHeaderLayout(t *testing.T) {
	th := DefaultTheme()
	size := vg.Point{X: 6 * vg.Inch, Y: 5 * vg.Inch}

	bare := headerLayout(size, "", "", nil, th)
	if bare.top != size.Y-th.Spacing.XL {
		t.Errorf("Got top %v without header", bare.top)
	}
	if bare.noteMargin != 2*th.Spacing.XL || len(bare.texts) != 0 {
		t.Errorf("Got note margin %v and %d texts", bare.noteMargin, len(bare.texts))
	}

	full := headerLayout(size, "GDP growth", "Annual percent", []Note{
		{Label: "Source:", Text: "World Development Indicators"},
		{Text: "Unlabelled note"},
	}, th)
	if full.top >= bare.top-th.Spacing.XL {
		t.Errorf("Header did not take space: top %v", full.top)
	}
	if full.noteMargin <= bare.noteMargin+2*th.Spacing.XL {
		t.Errorf("Notes did not take space: %v", full.noteMargin)
	}
	// title, subtitle, label and body of the first note, body of the second
	if len(full.texts) != 5 {
		t.Errorf("Got %d texts, want 5", len(full.texts))
	}
	if full.texts[3].at.X <= full.texts[2].at.X {
		t.Errorf("Note body not right of its label")
	}
	if full.texts[4].at.Y <= full.texts[3].at.Y {
		t.Errorf("Second note not above the first")
	}
}
