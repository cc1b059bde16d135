package dock

// DefaultThreshold is the edge band depth used when no override is
// configured. The overlay renderer must be fed the same value that
// the resolver uses, or the highlight will not match the drop.
const DefaultThreshold = 100

// Zone identifies the dock target whose edge band contains the
// pointer.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneLeft
	ZoneRight
	ZoneBottom
)

func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

func (z Zone) Valid() bool {
	switch z {
	case ZoneNone, ZoneLeft, ZoneRight, ZoneBottom:
		return true
	default:
		return false
	}
}

// ResolveZone maps a pointer position to a dock zone. Edge bands are
// half-open: the left band covers x < threshold, the right band
// covers x >= width-threshold, the bottom band covers
// y >= height-threshold. Bands may overlap on small viewports; left
// wins over right and right wins over bottom. A negative threshold
// behaves as zero. Pointers outside the viewport resolve by the same
// arithmetic.
func ResolveZone(p Point, vp Viewport, threshold int) Zone {
	if threshold < 0 {
		threshold = 0
	}
	if p.X < threshold {
		return ZoneLeft
	}
	if p.X >= vp.Width-threshold {
		return ZoneRight
	}
	if p.Y >= vp.Height-threshold {
		return ZoneBottom
	}
	return ZoneNone
}
