// Package breakpoints maps terminal width to a layout tier so the
// dashboard can degrade gracefully on narrow terminals.
package breakpoints

// Width thresholds in terminal cells.
const (
	// CompactWidth is the upper bound (exclusive) of the compact tier.
	CompactWidth = 80

	// WideWidth is the lower bound (inclusive) of the wide tier.
	WideWidth = 120
)

// Tier is a responsive layout class.
type Tier int

const (
	// TierCompact hides floating-panel chrome and stacks docked panels.
	TierCompact Tier = iota
	// TierNormal is the default layout.
	TierNormal
	// TierWide enables long labels and extra status detail.
	TierWide
)

func (t Tier) String() string {
	switch t {
	case TierCompact:
		return "compact"
	case TierNormal:
		return "normal"
	case TierWide:
		return "wide"
	default:
		return "unknown"
	}
}

// ForWidth returns the tier for a terminal width. The compact cutoff
// can be raised through configuration; compactWidth <= 0 keeps the
// default.
func ForWidth(width, compactWidth int) Tier {
	if compactWidth <= 0 {
		compactWidth = CompactWidth
	}
	switch {
	case width < compactWidth:
		return TierCompact
	case width >= WideWidth:
		return TierWide
	default:
		return TierNormal
	}
}
