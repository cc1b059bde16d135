package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/scourlabs/scour/internal/tui/theme"
)

// viewHelpDialog renders the full keybinding reference in two
// columns, grouped the way FullHelp groups them.
func (m *Model) viewHelpDialog() string {
	groups := m.keys.FullHelp()
	half := (len(groups) + 1) / 2

	left := renderHelpGroups(groups[:half])
	right := renderHelpGroups(groups[half:])

	colStyle := lipgloss.NewStyle().MarginRight(2)
	body := lipgloss.JoinHorizontal(lipgloss.Top, colStyle.Render(left), colStyle.Render(right))

	var b strings.Builder
	b.WriteString(theme.HelpTitle.Render("Keyboard reference"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(theme.DialogNote.Render("esc closes " + helpMouseHint))
	return theme.Dialog.Render(b.String())
}

const helpMouseHint = "· drag a panel header to move it, double-click to pop it out"

func renderHelpGroups(groups [][]key.Binding) string {
	width := 0
	for _, group := range groups {
		for _, binding := range group {
			if w := lipgloss.Width(keyLabel(binding)); w > width {
				width = w
			}
		}
	}

	var b strings.Builder
	for gi, group := range groups {
		for _, binding := range group {
			label := keyLabel(binding)
			pad := strings.Repeat(" ", width-lipgloss.Width(label))
			fmt.Fprintf(&b, "  %s%s  %s\n",
				theme.ShortcutKey.Render(label), pad,
				theme.ShortcutDesc.Render(binding.Help().Desc))
		}
		if gi < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
