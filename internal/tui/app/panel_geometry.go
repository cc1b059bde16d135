package app

import (
	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/mouse"
)

const (
	headerHeight = 1
	statusHeight = 1
)

// panelPlacement pairs a panel with the workspace rect it occupies
// this frame.
type panelPlacement struct {
	Panel dock.Panel
	Rect  dock.Rect
}

// panelPlacements lists panels in paint order: docked sides first,
// bottom over them, floats from back to front.
func (m *Model) panelPlacements() []panelPlacement {
	vp := m.workspaceViewport()
	if vp.Empty() {
		return nil
	}
	out := make([]panelPlacement, 0, 4)
	for _, pos := range []dock.Position{dock.PositionLeft, dock.PositionRight, dock.PositionBottom} {
		p, ok := m.store.Docked(pos)
		if !ok {
			continue
		}
		r, ok := dock.DockedRect(pos, vp, p.Frac)
		if !ok {
			continue
		}
		out = append(out, panelPlacement{Panel: p, Rect: r})
	}
	for _, p := range m.store.Floating() {
		frame := p.Float
		if frame.Empty() {
			frame = dock.DefaultFloatRect(vp)
		}
		out = append(out, panelPlacement{Panel: p, Rect: frame})
	}
	return out
}

// panelHits converts placements into hit rects, topmost first so the
// panel drawn last wins the hit.
func (m *Model) panelHits() []mouse.PanelHit {
	placements := m.panelPlacements()
	hits := make([]mouse.PanelHit, 0, len(placements))
	for i := len(placements) - 1; i >= 0; i-- {
		hits = append(hits, hitForPlacement(placements[i]))
	}
	return hits
}

func hitForPlacement(pl panelPlacement) mouse.PanelHit {
	r := pl.Rect
	hit := mouse.PanelHit{
		PanelID: pl.Panel.ID,
		Outer:   mouse.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
	}
	if r.W > 2 && r.H > 2 {
		hit.Header = mouse.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: 1}
	}
	if r.W > 2 && r.H > 3 {
		hit.Body = mouse.Rect{X: r.X + 1, Y: r.Y + 2, W: r.W - 2, H: r.H - 3}
	}
	return hit
}
