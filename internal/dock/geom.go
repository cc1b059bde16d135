package dock

// Point is a pointer position on the drag surface.
type Point struct {
	X int
	Y int
}

// Viewport is the drag surface extent.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Rect is a floating panel frame.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
