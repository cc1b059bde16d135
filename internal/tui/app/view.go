package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/tui/overlayview"
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "starting " + identity.BrandName + "…"
	}
	return strings.Join([]string{
		m.viewHeader(),
		m.viewWorkspaceArea(),
		m.viewStatusline(),
	}, "\n")
}

// viewWorkspaceArea composites the panel layers onto a cell canvas:
// docked panels, floats back to front, drag preview, then dialogs.
func (m *Model) viewWorkspaceArea() string {
	vp := m.workspaceViewport()
	if vp.Empty() {
		return ""
	}

	placements := m.panelPlacements()
	canvas := overlayview.NewCanvas(m.workspaceBase(vp, len(placements) == 0), vp.Width, vp.Height)
	for _, pl := range placements {
		canvas.Paint(m.renderPanel(pl), pl.Rect.X, pl.Rect.Y)
	}
	m.paintDragOverlay(canvas, vp)

	switch m.state {
	case StateCommandPalette:
		paintCentered(canvas, m.viewCommandPalette(), vp)
	case StateHelp:
		paintCentered(canvas, m.viewHelpDialog(), vp)
	}
	return canvas.Render()
}

func (m *Model) workspaceBase(vp dock.Viewport, empty bool) string {
	if !empty {
		return ""
	}
	message := m.emptyStateMessage()
	return lipgloss.Place(vp.Width, vp.Height, lipgloss.Center, lipgloss.Center, message)
}

func paintCentered(canvas *overlayview.Canvas, content string, vp dock.Viewport) {
	if content == "" {
		return
	}
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)
	x := (vp.Width - w) / 2
	y := (vp.Height - h) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	canvas.Paint(content, x, y)
}
