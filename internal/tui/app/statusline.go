package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/breakpoints"
	"github.com/scourlabs/scour/internal/tui/theme"
	"github.com/scourlabs/scour/internal/version"
)

func (m *Model) viewStatusline() string {
	if m.width <= 0 {
		return ""
	}

	left := m.statusContext()
	if warn := m.serviceWarning(); warn != "" {
		left += "  " + theme.StatusWarning.Render(warn)
	}
	if toast := m.toastText(); toast != "" {
		left += "  " + toast
	}

	right := ""
	if m.tier == breakpoints.TierCompact {
		right = theme.StatusBarKey.Render(keyLabel(m.keys.help)) + theme.ListDimmed.Render(" help")
	} else {
		right = m.helpView.View(m.keys)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		left = ansi.Truncate(left, maxInt(m.width-lipgloss.Width(right)-1, 0), "…")
		gap = maxInt(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// serviceWarning is the persistent footer marker for a backend older
// than the dashboard supports. Toasts expire; this stays until the
// service is upgraded.
func (m *Model) serviceWarning() string {
	if m.meta.Version == "" {
		return ""
	}
	if version.CheckService(m.meta.Version) != nil {
		return "service v" + version.Normalize(m.meta.Version) + " unsupported"
	}
	return ""
}

// statusContext describes what the user is holding or looking at.
func (m *Model) statusContext() string {
	if sess, ok := m.drag.Active(); ok {
		p, _ := m.store.Get(sess.PanelID)
		target := "release to float"
		if pos, ok := dock.ZonePosition(sess.Zone); ok {
			target = "release to dock " + pos.String()
		}
		return theme.StatusMessage.Render("moving "+p.Title) + theme.ListDimmed.Render("  "+target+", esc cancels")
	}

	p, ok := m.focusedPanel()
	if !ok {
		return theme.ListDimmed.Render("no panels")
	}
	where := "floating"
	if p.Position.Docked() {
		where = "docked " + p.Position.String()
	}
	out := theme.StatusBarKey.Render(p.Title) + theme.ListDimmed.Render(" "+where)
	if p.Kind == dock.KindSamples {
		if set, ok := m.currentSampleSet(); ok {
			if summary := sampleRowSummary(len(set.Rows), m.sampleRow); summary != "" {
				out += theme.ListDimmed.Render("  " + summary)
			}
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
