package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/theme"
)

// paletteEntry is one runnable command. Actions run on the update
// goroutine with the palette already closed.
type paletteEntry struct {
	Label    string
	Shortcut string
	action   func(*Model) tea.Cmd
}

type paletteMatch struct {
	Index          int
	MatchedIndexes []int
}

type paletteState struct {
	input   textinput.Model
	entries []paletteEntry
	matches []paletteMatch
	cursor  int
}

type paletteSource []paletteEntry

func (s paletteSource) String(i int) string { return s[i].Label }
func (s paletteSource) Len() int            { return len(s) }

func newPaletteState() paletteState {
	ti := textinput.New()
	ti.Placeholder = "type a command"
	ti.Prompt = "> "
	ti.CharLimit = 64
	return paletteState{input: ti}
}

func (m *Model) openCommandPalette() {
	m.palette.entries = m.paletteEntries()
	m.palette.input.SetValue("")
	m.palette.input.Focus()
	m.palette.cursor = 0
	m.refreshPaletteMatches()
	m.state = StateCommandPalette
}

func (m *Model) closeCommandPalette() {
	m.palette.input.Blur()
	m.state = StateWorkspace
}

func (m *Model) refreshPaletteMatches() {
	query := strings.TrimSpace(m.palette.input.Value())
	entries := m.palette.entries
	if query == "" {
		all := make([]paletteMatch, len(entries))
		for i := range entries {
			all[i] = paletteMatch{Index: i}
		}
		m.palette.matches = all
	} else {
		found := fuzzy.FindFrom(query, paletteSource(entries))
		out := make([]paletteMatch, 0, len(found))
		for _, match := range found {
			out = append(out, paletteMatch{Index: match.Index, MatchedIndexes: match.MatchedIndexes})
		}
		m.palette.matches = out
	}
	if m.palette.cursor >= len(m.palette.matches) {
		m.palette.cursor = 0
	}
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeCommandPalette()
		return nil
	case "enter":
		if m.palette.cursor < len(m.palette.matches) {
			entry := m.palette.entries[m.palette.matches[m.palette.cursor].Index]
			m.closeCommandPalette()
			return entry.action(m)
		}
		m.closeCommandPalette()
		return nil
	case "up":
		if m.palette.cursor > 0 {
			m.palette.cursor--
		}
		return nil
	case "down":
		if m.palette.cursor < len(m.palette.matches)-1 {
			m.palette.cursor++
		}
		return nil
	}
	var cmd tea.Cmd
	m.palette.input, cmd = m.palette.input.Update(msg)
	m.refreshPaletteMatches()
	return cmd
}

// paletteEntries builds the command list at open time so labels can
// reflect the current state.
func (m *Model) paletteEntries() []paletteEntry {
	entries := []paletteEntry{
		{
			Label:    "Dock panel left",
			Shortcut: keyLabel(m.keys.dockLeft),
			action:   func(m *Model) tea.Cmd { m.dockFocused(dock.PositionLeft); return nil },
		},
		{
			Label:    "Dock panel right",
			Shortcut: keyLabel(m.keys.dockRight),
			action:   func(m *Model) tea.Cmd { m.dockFocused(dock.PositionRight); return nil },
		},
		{
			Label:    "Dock panel bottom",
			Shortcut: keyLabel(m.keys.dockBottom),
			action:   func(m *Model) tea.Cmd { m.dockFocused(dock.PositionBottom); return nil },
		},
		{
			Label:    "Float panel",
			Shortcut: keyLabel(m.keys.floatPanel),
			action:   func(m *Model) tea.Cmd { m.dockFocused(dock.PositionFloat); return nil },
		},
		{
			Label:    "Cycle dock position",
			Shortcut: keyLabel(m.keys.dockCycle),
			action:   func(m *Model) tea.Cmd { m.cycleDockFocused(); return nil },
		},
		{
			Label:    "Toggle pin",
			Shortcut: keyLabel(m.keys.togglePin),
			action:   func(m *Model) tea.Cmd { m.togglePinFocused(); return nil },
		},
		{
			Label:    fmt.Sprintf("Toggle edge snapping (%s)", onOff(m.snapEnabled)),
			Shortcut: keyLabel(m.keys.toggleSnap),
			action:   func(m *Model) tea.Cmd { m.toggleSnap(); return nil },
		},
		{
			Label:  "Grow panel",
			action: func(m *Model) tea.Cmd { m.resizeFocused(1); return nil },
		},
		{
			Label:  "Shrink panel",
			action: func(m *Model) tea.Cmd { m.resizeFocused(-1); return nil },
		},
		{
			Label:    "Toggle favorite",
			Shortcut: keyLabel(m.keys.favorite),
			action:   func(m *Model) tea.Cmd { return m.toggleFavoriteCurrent() },
		},
		{
			Label:  fmt.Sprintf("Show favorites only (%s)", onOff(m.issueFilter.FavoriteOnly)),
			action: func(m *Model) tea.Cmd { return m.toggleFavoriteFilter() },
		},
		{
			Label:  fmt.Sprintf("Cycle severity filter (%s)", orAll(m.issueFilter.Severity)),
			action: func(m *Model) tea.Cmd { return m.cycleSeverityFilter() },
		},
		{
			Label:    "Copy sample row",
			Shortcut: keyLabel(m.keys.copyRow),
			action:   func(m *Model) tea.Cmd { return m.copyCurrentRow() },
		},
		{
			Label:    "Export report",
			Shortcut: keyLabel(m.keys.exportReport),
			action:   func(m *Model) tea.Cmd { return m.exportReportCmd() },
		},
		{
			Label:    "Refresh data",
			Shortcut: keyLabel(m.keys.refresh),
			action:   func(m *Model) tea.Cmd { return m.refreshAllCmd() },
		},
		{
			Label:    "Reset layout",
			Shortcut: keyLabel(m.keys.resetLayout),
			action:   func(m *Model) tea.Cmd { m.resetLayout(); return nil },
		},
	}

	for _, table := range m.schema.Tables {
		name := table.Name
		entries = append(entries, paletteEntry{
			Label:  "View samples: " + name,
			action: func(m *Model) tea.Cmd { return m.selectTable(name) },
		})
	}
	if m.presets != nil {
		for _, info := range m.presets.List() {
			name := info.Name
			entries = append(entries, paletteEntry{
				Label: "Apply preset: " + name,
				action: func(m *Model) tea.Cmd {
					m.applyPreset(name)
					m.setToast("preset "+name+" applied", toastInfo)
					return nil
				},
			})
		}
	}

	entries = append(entries,
		paletteEntry{
			Label:    "Help",
			Shortcut: keyLabel(m.keys.help),
			action:   func(m *Model) tea.Cmd { m.state = StateHelp; return nil },
		},
		paletteEntry{
			Label:    "Quit",
			Shortcut: keyLabel(m.keys.quit),
			action:   func(m *Model) tea.Cmd { return m.quitCmd() },
		},
	)
	return entries
}

func (m *Model) toggleFavoriteFilter() tea.Cmd {
	m.issueFilter.FavoriteOnly = !m.issueFilter.FavoriteOnly
	m.issueCursor = 0
	return tea.Batch(m.fetchIssuesCmd(), m.spin.Tick)
}

func (m *Model) cycleSeverityFilter() tea.Cmd {
	switch m.issueFilter.Severity {
	case "":
		m.issueFilter.Severity = "error"
	case "error":
		m.issueFilter.Severity = "warning"
	case "warning":
		m.issueFilter.Severity = "info"
	default:
		m.issueFilter.Severity = ""
	}
	m.issueCursor = 0
	return tea.Batch(m.fetchIssuesCmd(), m.spin.Tick)
}

// resizeFocused grows or shrinks the focused panel one step. Docked
// panels move by dock fraction, floats by cells.
func (m *Model) resizeFocused(dir int) {
	p, ok := m.focusedPanel()
	if !ok {
		return
	}
	var size dock.Size
	if p.Position.Docked() {
		size = dock.Size{Frac: p.Frac + 0.05*float64(dir)}
	} else {
		frame := p.Float
		frame.W += 4 * dir
		frame.H += 2 * dir
		size = dock.Size{Frame: frame}
	}
	if err := m.store.Resize(p.ID, size); err != nil {
		m.setToast("resize: "+err.Error(), toastError)
		return
	}
	m.clampFloatsToViewport()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func orAll(severity string) string {
	if severity == "" {
		return "all"
	}
	return severity
}

// viewCommandPalette renders the palette dialog.
func (m *Model) viewCommandPalette() string {
	width := paletteDialogWidth(m.width)
	inner := width - 4

	var b strings.Builder
	b.WriteString(theme.HelpTitle.Render("Commands"))
	b.WriteString("\n\n")
	b.WriteString(m.palette.input.View())
	b.WriteString("\n\n")

	if len(m.palette.matches) == 0 {
		b.WriteString(theme.ListDimmed.Render("no matching command"))
	}
	limit := len(m.palette.matches)
	if limit > paletteMaxRows {
		limit = paletteMaxRows
	}
	for i := 0; i < limit; i++ {
		match := m.palette.matches[i]
		entry := m.palette.entries[match.Index]
		line := renderPaletteLine(entry, match.MatchedIndexes, i == m.palette.cursor, inner)
		b.WriteString(line)
		if i < limit-1 {
			b.WriteString("\n")
		}
	}
	if len(m.palette.matches) > paletteMaxRows {
		b.WriteString("\n")
		b.WriteString(theme.ListDimmed.Render(fmt.Sprintf("…and %d more", len(m.palette.matches)-paletteMaxRows)))
	}

	return theme.DialogCompact.Width(width).Render(b.String())
}

const paletteMaxRows = 10

func paletteDialogWidth(termWidth int) int {
	width := 56
	if termWidth > 0 && width > termWidth-4 {
		width = termWidth - 4
	}
	if width < 24 {
		width = 24
	}
	return width
}

// renderPaletteLine highlights the fuzzy-matched runes and right
// aligns the shortcut.
func renderPaletteLine(entry paletteEntry, matched []int, selected bool, width int) string {
	matchedSet := make(map[int]struct{}, len(matched))
	for _, idx := range matched {
		matchedSet[idx] = struct{}{}
	}

	var label strings.Builder
	for i, r := range []rune(entry.Label) {
		if _, ok := matchedSet[i]; ok {
			label.WriteString(theme.FavoriteMark.Render(string(r)))
		} else {
			label.WriteString(string(r))
		}
	}

	text := label.String()
	if entry.Shortcut != "" {
		pad := width - len([]rune(entry.Label)) - len([]rune(entry.Shortcut)) - 4
		if pad < 1 {
			pad = 1
		}
		text += strings.Repeat(" ", pad) + theme.ShortcutKey.Render(entry.Shortcut)
	}
	if selected {
		return theme.ListSelected.Render("▸ ") + text
	}
	return "  " + text
}
