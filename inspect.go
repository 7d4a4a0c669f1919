package wbplot

// ArtifactSource is anything that exposes drawn artifacts.
type ArtifactSource interface {
	Artifacts() []Artifact
}

// Descriptor summarises the data artifacts of a panel.
type Descriptor struct {
	HasLine    bool
	LineIsTime bool // X values of the first line are time stamps
	HasPoints  bool

	// RectGroups holds the rectangles per originating plotting call,
	// in order of first appearance.
	RectGroups [][]*Rect
}

// HasRects reports whether any rectangle was found.
func (d Descriptor) HasRects() bool {
	for _, g := range d.RectGroups {
		if len(g) > 0 {
			return true
		}
	}
	return false
}

// Inspect walks the artifacts of src. Reference lines and text
// annotations are ignored. A nil source yields the zero Descriptor.
func Inspect(src ArtifactSource) Descriptor {
	var d Descriptor
	if src == nil {
		return d
	}
	index := map[int]int{}
	for _, a := range src.Artifacts() {
		switch a := a.(type) {
		case *Line:
			if a == nil {
				continue
			}
			if !d.HasLine {
				d.HasLine = true
				d.LineIsTime = a.XTime && len(a.XYs) > 0
			}
		case *Points:
			if a != nil {
				d.HasPoints = true
			}
		case *Rect:
			if a == nil {
				continue
			}
			i, ok := index[a.Group]
			if !ok {
				i = len(d.RectGroups)
				index[a.Group] = i
				d.RectGroups = append(d.RectGroups, nil)
			}
			d.RectGroups[i] = append(d.RectGroups[i], a)
		}
	}
	return d
}
