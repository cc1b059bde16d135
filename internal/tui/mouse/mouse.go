package mouse

// Rect describes a hit-test rectangle in screen coordinates.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle has non-positive dimensions.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Region identifies which part of a panel a pointer landed on.
type Region int

const (
	RegionNone Region = iota
	// RegionHeader is the title bar, the drag handle for docking.
	RegionHeader
	// RegionBody is the scrollable content area.
	RegionBody
)

// PanelHit captures a panel hit-test match.
type PanelHit struct {
	PanelID string
	Region  Region
	Outer   Rect
	Header  Rect
	Body    Rect
}

// HitPanels returns the topmost panel containing the point. Hits must
// be ordered topmost-first; the first match wins, so floating panels
// shadow docked panels underneath them.
func HitPanels(hits []PanelHit, x, y int) (PanelHit, bool) {
	for _, hit := range hits {
		if !hit.Outer.Contains(x, y) {
			continue
		}
		switch {
		case hit.Header.Contains(x, y):
			hit.Region = RegionHeader
		case hit.Body.Contains(x, y):
			hit.Region = RegionBody
		default:
			hit.Region = RegionNone
		}
		return hit, true
	}
	return PanelHit{}, false
}
