package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/tui/breakpoints"
	"github.com/scourlabs/scour/internal/tui/theme"
)

func (m *Model) viewHeader() string {
	if m.width <= 0 {
		return ""
	}

	left := theme.Title.Render(" " + identity.BrandName + " ")
	left += " " + theme.HeaderWorkspace.Render(m.workspace)
	if m.schema.Dataset != "" && m.tier != breakpoints.TierCompact {
		left += " " + theme.ListDimmed.Render(m.schema.Dataset)
	}

	right := ""
	if m.loadingAny() {
		right = m.spin.View() + " "
	}
	if !m.snapEnabled {
		right += theme.StatusWarning.Render("snap off") + " "
	}
	if m.meta.Version != "" && m.tier == breakpoints.TierWide {
		right += theme.ListDimmed.Render(m.meta.Service + " v" + m.meta.Version)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return theme.HeaderBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
