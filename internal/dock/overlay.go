package dock

// OverlayRect returns the edge band to highlight while a drag hovers
// a zone. Feed it the same threshold as ResolveZone so the highlight
// matches where the drop will dock. ZoneNone returns false; a
// threshold wider than the viewport covers the whole axis.
func OverlayRect(z Zone, vp Viewport, threshold int) (Rect, bool) {
	if threshold < 0 {
		threshold = 0
	}
	w := clampInt(threshold, 0, maxInt(vp.Width, 0))
	h := clampInt(threshold, 0, maxInt(vp.Height, 0))
	switch z {
	case ZoneLeft:
		return Rect{X: 0, Y: 0, W: w, H: vp.Height}, true
	case ZoneRight:
		return Rect{X: vp.Width - w, Y: 0, W: w, H: vp.Height}, true
	case ZoneBottom:
		return Rect{X: 0, Y: vp.Height - h, W: vp.Width, H: h}, true
	default:
		return Rect{}, false
	}
}

// DockedRect is the frame a panel occupies once committed to a side:
// a full-height column for left and right, a full-width row for
// bottom. The fraction is the panel's share of the relevant axis.
func DockedRect(pos Position, vp Viewport, frac float64) (Rect, bool) {
	if vp.Empty() || !pos.Docked() {
		return Rect{}, false
	}
	if frac <= 0 {
		frac = DefaultDockFraction(pos)
	}
	if frac < MinDockFraction {
		frac = MinDockFraction
	}
	if frac > MaxDockFraction {
		frac = MaxDockFraction
	}
	switch pos {
	case PositionLeft:
		w := maxInt(int(float64(vp.Width)*frac), 1)
		return Rect{X: 0, Y: 0, W: w, H: vp.Height}, true
	case PositionRight:
		w := maxInt(int(float64(vp.Width)*frac), 1)
		return Rect{X: vp.Width - w, Y: 0, W: w, H: vp.Height}, true
	case PositionBottom:
		h := maxInt(int(float64(vp.Height)*frac), 1)
		return Rect{X: 0, Y: vp.Height - h, W: vp.Width, H: h}, true
	default:
		return Rect{}, false
	}
}
