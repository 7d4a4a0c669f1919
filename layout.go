package wbplot

import (
	"strings"
	"unicode/utf8"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Note is a footnote such as ("Source:", "World Development Indicators").
type Note struct {
	Label string
	Text  string
}

const (
	titleWrap    = 80
	subtitleWrap = 100
	noteWrap     = 120
)

// Wrap breaks s at whitespace into lines of at most width characters.
// Whitespace runs collapse to a single space and words longer than
// width are split.
func Wrap(s string, width int) string {
	words := strings.Fields(s)
	if width < 1 || len(words) == 0 {
		return strings.Join(words, " ")
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if curLen > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
	}
	for _, w := range words {
		for utf8.RuneCountInString(w) > width {
			room := width - curLen
			if curLen > 0 {
				room--
			}
			if room <= 0 {
				flush()
				continue
			}
			head, tail := splitRunes(w, room)
			if curLen > 0 {
				cur.WriteByte(' ')
				curLen++
			}
			cur.WriteString(head)
			curLen += room
			flush()
			w = tail
		}
		n := utf8.RuneCountInString(w)
		if curLen > 0 && curLen+1+n > width {
			flush()
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(w)
		curLen += n
	}
	flush()
	return strings.Join(lines, "\n")
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for j := range s {
		if i == n {
			return s[:j], s[j:]
		}
		i++
	}
	return s, ""
}

// -------------------------------------------------------------------------
// Figure layout

// placed is a text block anchored at a canvas point.
type placed struct {
	at    vg.Point
	text  string
	style text.Style
}

// layout is the vertical arrangement of a figure, in canvas units
// measured from the bottom.
type layout struct {
	top        vg.Length // upper edge of the panel area
	bottom     vg.Length // lower edge of the panel area
	noteMargin vg.Length // height reserved for the notes
	marginX    vg.Length
	texts      []placed
}

// headerLayout places title, subtitle and notes on a canvas of the
// given size.
func headerLayout(size vg.Point, title, subtitle string, notes []Note, th Theme) layout {
	sp, sz := th.Spacing, th.Sizes
	l := layout{marginX: sp.M}
	y := size.Y - sp.XL

	if title != "" {
		st := TextStyle{Size: sz.L, Weight: xfont.WeightBold, Color: th.TextColor}.gonum(th)
		st.YAlign = text.YTop
		txt := Wrap(title, titleWrap)
		l.texts = append(l.texts, placed{vg.Point{X: l.marginX, Y: y}, txt, st})
		y -= st.Height(txt) + sp.XXS
	}
	if subtitle != "" {
		st := TextStyle{Size: sz.M, Weight: xfont.WeightNormal, Color: th.SubtleColor}.gonum(th)
		st.YAlign = text.YTop
		txt := Wrap(subtitle, subtitleWrap)
		l.texts = append(l.texts, placed{vg.Point{X: l.marginX, Y: y}, txt, st})
		y -= st.Height(txt) + sp.XL
	}
	l.top = y

	yNote := sp.XL
	for _, n := range notes {
		label := TextStyle{Size: sz.S, Weight: xfont.WeightBold, Color: th.TextColor}.gonum(th)
		body := TextStyle{Size: sz.S, Weight: xfont.WeightNormal, Color: th.SubtleColor}.gonum(th)
		lbl := n.Label + " "
		if n.Label == "" {
			lbl = ""
		}
		txt := Wrap(n.Text, noteWrap)
		lw := label.Width(lbl)
		if lbl != "" {
			l.texts = append(l.texts, placed{vg.Point{X: l.marginX, Y: yNote}, lbl, label})
		}
		l.texts = append(l.texts, placed{vg.Point{X: l.marginX + lw, Y: yNote}, txt, body})
		yNote += body.Height(txt) + sp.XL
	}
	l.noteMargin = yNote + sp.XL
	return l
}

// bottomMargin returns the space below the panel area. The x label
// block is four or two xl high, the legend block five xl.
func bottomMargin(hasXLabel, hasLegend, hasNotes bool, noteMargin, xl vg.Length) vg.Length {
	xlabel := 2 * xl
	if hasXLabel {
		xlabel = 4 * xl
	}
	switch {
	case hasLegend && !hasNotes:
		return xl + 4*xl + xlabel
	case hasLegend && hasNotes:
		return noteMargin + xl + 4*xl + xlabel
	case hasNotes:
		return noteMargin + xlabel
	}
	return xlabel
}

// legendBottom is the lower edge of the legend block.
func (l layout) legendBottom() vg.Length {
	return l.bottom - l.noteMargin
}

func (l layout) drawTexts(c draw.Canvas) {
	for _, t := range l.texts {
		if t.text == "" {
			continue
		}
		c.FillText(t.style, t.at, t.text)
	}
}
