package wbplot

import (
	"image/color"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LegendEntry is one handle of the figure legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

const (
	legendColumns     = 3
	legendMarkerSize  = 7   // points
	legendHandleLen   = 2.0 // font sizes
	legendTextPad     = 1.2 // font sizes
	legendColSpacing  = 1.8 // font sizes
	legendLineSpacing = 0.5 // font sizes
)

// LegendEntries collects the labelled data artifacts of p once per
// label in drawing order. Rectangles of one plotting call form a single
// entry. Labels starting with an underscore are hidden.
func LegendEntries(p *Panel) []LegendEntry {
	var entries []LegendEntry
	seen := NewStringSet()
	add := func(label string, c color.Color) {
		if label == "" || strings.HasPrefix(label, "_") || seen.Contains(label) {
			return
		}
		seen.Add(label)
		entries = append(entries, LegendEntry{Label: label, Color: c})
	}
	for _, a := range p.artifacts {
		switch a := a.(type) {
		case *Line:
			add(a.Label, a.Color)
		case *Points:
			add(a.Label, a.Color)
		case *Rect:
			add(a.Label, a.Color)
		}
	}
	return entries
}

// SuppressLegend reports whether a legend would not distinguish
// anything: at most one distinct label.
func SuppressLegend(entries []LegendEntry) bool {
	labels := NewStringSet()
	for _, e := range entries {
		labels.Add(e.Label)
	}
	return len(labels) <= 1
}

// legendCells distributes n entries over ncol columns filled top to
// bottom, the leading columns taking one extra entry each if needed. It
// returns the (column, row) of each entry and the number of rows.
func legendCells(n, ncol int) ([][2]int, int) {
	base, large := n/ncol, n%ncol
	cells := make([][2]int, 0, n)
	for col := 0; col < ncol; col++ {
		rows := base
		if col < large {
			rows++
		}
		for r := 0; r < rows; r++ {
			cells = append(cells, [2]int{col, r})
		}
	}
	nrow := base
	if large > 0 {
		nrow++
	}
	return cells, nrow
}

// drawLegend draws the entries centred horizontally with the lower
// edge of the block at y.
func drawLegend(c draw.Canvas, entries []LegendEntry, y vg.Length, th Theme) {
	if len(entries) == 0 {
		return
	}
	fs := th.Sizes.S
	st := TextStyle{Size: fs, Weight: xfont.WeightNormal, Color: th.TextColor}.gonum(th)
	st.YAlign = text.YCenter

	ncol := len(entries)
	if ncol > legendColumns {
		ncol = legendColumns
	}
	cells, nrow := legendCells(len(entries), ncol)

	labels := make([]string, len(entries))
	colW := make([]vg.Length, ncol)
	var rowH vg.Length
	for i, e := range entries {
		labels[i] = upper.String(e.Label)
		col := cells[i][0]
		w := legendHandleLen*fs + legendTextPad*fs + st.Width(labels[i])
		if w > colW[col] {
			colW[col] = w
		}
		if h := st.Height(labels[i]); h > rowH {
			rowH = h
		}
	}
	rowH += legendLineSpacing * fs

	var total vg.Length
	for _, w := range colW {
		total += w
	}
	total += vg.Length(ncol-1) * legendColSpacing * fs

	x0 := c.Min.X + (c.Max.X-c.Min.X-total)/2
	glyph := draw.GlyphStyle{Radius: legendMarkerSize / 2.0, Shape: draw.CircleGlyph{}}
	for i, e := range entries {
		col, row := cells[i][0], cells[i][1]
		x := x0
		for j := 0; j < col; j++ {
			x += colW[j] + legendColSpacing*fs
		}
		yc := y + (vg.Length(nrow-row)-0.5)*rowH
		glyph.Color = e.Color
		if glyph.Color == nil {
			glyph.Color = th.GridColor
		}
		c.DrawGlyph(glyph, vg.Point{X: x + legendHandleLen*fs/2, Y: yc})
		c.FillText(st, vg.Point{X: x + (legendHandleLen+legendTextPad)*fs, Y: yc}, labels[i])
	}
}
