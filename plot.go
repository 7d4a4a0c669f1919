package wbplot

import (
	"go.uber.org/zap"
)

// Figure is a grid of panels plus the figure level texts.
type Figure struct {
	// Size in pixels at DPI.
	Width, Height int
	DPI           float64

	Rows, Cols int

	Title    string
	Subtitle string
	Notes    []Note

	Theme Theme

	// Panels in row major order.
	Panels []*Panel

	// Legend holds the entries drawn below the panels. It is set by
	// Finish.
	Legend []LegendEntry

	palette  Resolved
	bins     Bins
	log      *zap.Logger
	finished bool
}

// Panel returns the panel in the given row and column, or nil.
func (f *Figure) Panel(row, col int) *Panel {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return nil
	}
	return f.Panels[row*f.Cols+col]
}

// Palette is the resolved palette of the figure.
func (f *Figure) Palette() Resolved { return f.palette }

// Images returns the images of all panels.
func (f *Figure) Images() []*Image {
	var images []*Image
	for _, p := range f.Panels {
		for _, a := range p.artifacts {
			if img, ok := a.(*Image); ok {
				images = append(images, img)
			}
		}
	}
	return images
}

// hasXLabel reports whether any panel shows an x axis label.
func (f *Figure) hasXLabel() bool {
	for _, p := range f.Panels {
		if p.X.Label != "" {
			return true
		}
	}
	return false
}
