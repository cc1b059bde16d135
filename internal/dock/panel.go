package dock

// Position is where a panel currently lives.
type Position int

const (
	PositionFloat Position = iota
	PositionLeft
	PositionRight
	PositionBottom
)

func (p Position) String() string {
	switch p {
	case PositionFloat:
		return "float"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

func (p Position) Valid() bool {
	switch p {
	case PositionFloat, PositionLeft, PositionRight, PositionBottom:
		return true
	default:
		return false
	}
}

// Docked reports whether the position is an edge slot.
func (p Position) Docked() bool {
	return p == PositionLeft || p == PositionRight || p == PositionBottom
}

// ParsePosition decodes a persisted position name.
func ParsePosition(s string) (Position, bool) {
	switch s {
	case "float":
		return PositionFloat, true
	case "left":
		return PositionLeft, true
	case "right":
		return PositionRight, true
	case "bottom":
		return PositionBottom, true
	default:
		return PositionFloat, false
	}
}

// ZonePosition maps a resolved dock zone to the position a drop
// commits to. ZoneNone has no dock position.
func ZonePosition(z Zone) (Position, bool) {
	switch z {
	case ZoneLeft:
		return PositionLeft, true
	case ZoneRight:
		return PositionRight, true
	case ZoneBottom:
		return PositionBottom, true
	default:
		return PositionFloat, false
	}
}

// PanelKind selects the content a panel renders.
type PanelKind int

const (
	KindSchema PanelKind = iota
	KindIssues
	KindSamples
	KindDetail
)

func (k PanelKind) String() string {
	switch k {
	case KindSchema:
		return "schema"
	case KindIssues:
		return "issues"
	case KindSamples:
		return "samples"
	case KindDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// ParseKind decodes a persisted panel kind.
func ParseKind(s string) (PanelKind, bool) {
	switch s {
	case "schema":
		return KindSchema, true
	case "issues":
		return KindIssues, true
	case "samples":
		return KindSamples, true
	case "detail":
		return KindDetail, true
	default:
		return KindSchema, false
	}
}

const (
	MinDockFraction = 0.10
	MaxDockFraction = 0.80

	MinPanelWidth  = 20
	MinPanelHeight = 6
)

// DefaultDockFraction is the share of the viewport axis a panel takes
// when first docked to a side.
func DefaultDockFraction(p Position) float64 {
	if p == PositionBottom {
		return 0.30
	}
	return 0.25
}

// Panel is one dockable content surface.
type Panel struct {
	ID       string
	Title    string
	Kind     PanelKind
	Position Position
	// Frac is the viewport-axis share while docked: width for left
	// and right, height for bottom.
	Frac float64
	// Float is the frame while floating.
	Float Rect
	// LastFloat remembers the floating frame so re-floating restores
	// it.
	LastFloat Rect
	// Z orders floating panels; higher draws on top.
	Z      int
	Pinned bool
}

// DefaultFloatRect centers a starter frame on the viewport.
func DefaultFloatRect(vp Viewport) Rect {
	if vp.Empty() {
		return Rect{X: 4, Y: 2, W: 60, H: 18}
	}
	w := clampInt(vp.Width/2, MinPanelWidth, vp.Width)
	h := clampInt(vp.Height/2, MinPanelHeight, vp.Height)
	return Rect{X: (vp.Width - w) / 2, Y: (vp.Height - h) / 2, W: w, H: h}
}

// SanitizePanelID keeps snapshot file names and log fields safe.
// Anything outside [a-zA-Z0-9-_] is replaced with an underscore.
func SanitizePanelID(id string) string {
	if id == "" {
		return ""
	}
	out := make([]rune, 0, len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
