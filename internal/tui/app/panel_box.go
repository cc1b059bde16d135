package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/theme"
)

// renderPanel draws one panel into its placement rect: border, header
// strip, then the kind-specific body.
func (m *Model) renderPanel(pl panelPlacement) string {
	p := pl.Panel
	r := pl.Rect
	if r.W < 2 || r.H < 2 {
		return ""
	}

	focused := p.ID == m.focusID
	dragging := false
	if sess, ok := m.drag.Active(); ok && sess.PanelID == p.ID {
		dragging = true
	}

	border := theme.PanelBorder
	switch {
	case dragging:
		border = theme.PanelBorderDragging
	case focused:
		border = theme.PanelBorderFocused
	}

	innerW := r.W - 2
	innerH := r.H - 2
	var b strings.Builder
	b.WriteString(m.renderPanelHeader(p, innerW, focused))
	if bodyH := innerH - 1; bodyH > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderPanelBody(p, innerW, bodyH))
	}
	return border.Width(innerW).Height(innerH).Render(b.String())
}

func (m *Model) renderPanelHeader(p dock.Panel, width int, focused bool) string {
	style := theme.PanelHeader
	if focused {
		style = theme.PanelHeaderFocused
	}
	title := p.Title
	if title == "" {
		title = p.Kind.String()
	}
	if p.Pinned {
		title += " ✦"
	}
	return style.Width(width).Render(ansi.Truncate(title, width, "…"))
}

func (m *Model) renderPanelBody(p dock.Panel, width, height int) string {
	switch p.Kind {
	case dock.KindSchema:
		return m.renderSchemaBody(p, width, height)
	case dock.KindIssues:
		return m.renderIssuesBody(p, width, height)
	case dock.KindSamples:
		return m.renderSamplesBody(p, width, height)
	case dock.KindDetail:
		return m.renderDetailBody(width, height)
	default:
		return ""
	}
}

// fitBodyLines truncates each line to the panel width and pads the
// block to the exact height.
func fitBodyLines(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, 0, height)
	for _, line := range lines {
		if lipgloss.Width(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		out = append(out, line)
	}
	for len(out) < height {
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// scrollWindow returns the first visible index so the cursor stays in
// view.
func scrollWindow(cursor, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	top := cursor - height + 1
	if top < 0 {
		top = 0
	}
	if top > total-height {
		top = total - height
	}
	return top
}

func (m *Model) loadingLine(what string) string {
	return m.spin.View() + theme.ListDimmed.Render(" loading "+what+"…")
}
