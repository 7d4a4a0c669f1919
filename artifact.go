package wbplot

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ArtifactKind discriminates the concrete types behind Artifact.
type ArtifactKind int

const (
	LineKind ArtifactKind = iota
	PointsKind
	RectKind
	ImageKind
	RefLineKind
	TextKind
)

var artifactKindNames = []string{"line", "points", "rect", "image", "refline", "text"}

func (k ArtifactKind) String() string {
	if k < 0 || int(k) >= len(artifactKindNames) {
		return "unknown"
	}
	return artifactKindNames[k]
}

// Artifact is a visual element of a panel. The concrete types are
// *Line, *Points, *Rect, *Image, *RefLine and *Text.
type Artifact interface {
	Kind() ArtifactKind
}

// Role tells where an artifact came from.
type Role int

const (
	RoleUser       Role = iota // added by a plotting call
	RoleZeroLine               // zero reference line added by styling
	RoleValueLabel             // bar value label added by styling
)

// -------------------------------------------------------------------------
// Data artifacts

// Line is a polyline. If XTime is set the X values are Unix seconds.
type Line struct {
	XYs    plotter.XYs
	XTime  bool
	Label  string
	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
}

func (*Line) Kind() ArtifactKind { return LineKind }

// Points is a scatter collection.
type Points struct {
	XYs    plotter.XYs
	Label  string
	Color  color.Color
	Radius vg.Length
}

func (*Points) Kind() ArtifactKind { return PointsKind }

// Rect is an axis aligned rectangle anchored at (X,Y). W and H may be
// negative, e.g. for bars below the baseline. Rectangles produced by the
// same plotting call share a Group.
type Rect struct {
	X, Y, W, H float64
	Group      int
	Label      string
	Color      color.Color
}

func (*Rect) Kind() ArtifactKind { return RectKind }

// Image is a colour-mapped grid. Data is indexed [row][col]; row 0 is
// drawn at the bottom.
type Image struct {
	Data     [][]float64
	Colormap *Colormap
	Norm     *BoundaryNorm
}

func (*Image) Kind() ArtifactKind { return ImageKind }

// Dims returns the number of columns and rows of img.
func (img *Image) Dims() (cols, rows int) {
	rows = len(img.Data)
	for _, r := range img.Data {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return cols, rows
}

// -------------------------------------------------------------------------
// Styling artifacts

// RefLine is a reference line spanning the whole panel: a horizontal
// line at Y == At or a vertical one at X == At.
type RefLine struct {
	Orient Orientation
	At     float64
	Role   Role
	Style  draw.LineStyle
}

func (*RefLine) Kind() ArtifactKind { return RefLineKind }

// Text is an annotation at data coordinates (X,Y) shifted by Offset.
type Text struct {
	X, Y   float64
	Text   string
	Role   Role
	Style  TextStyle
	Offset vg.Point
	XAlign text.XAlignment
	YAlign text.YAlignment
}

func (*Text) Kind() ArtifactKind { return TextKind }

// isData reports whether a takes part in autoscaling and classification.
func isData(a Artifact) bool {
	switch a.Kind() {
	case RefLineKind, TextKind:
		return false
	}
	return true
}
