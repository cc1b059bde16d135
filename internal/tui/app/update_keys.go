package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/prefs"
)

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch m.state {
	case StateCommandPalette:
		return m.handlePaletteKey(msg), true
	case StateHelp:
		return m.handleHelpKey(msg), true
	default:
		return m.handleWorkspaceKey(msg)
	}
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "esc", key.Matches(msg, m.keys.help), key.Matches(msg, m.keys.quit):
		m.state = StateWorkspace
	}
	return nil
}

func (m *Model) handleWorkspaceKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "esc" {
		if m.cancelActiveDrag() {
			return nil, true
		}
		m.toast = toastMessage{}
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quitCmd(), true
	case key.Matches(msg, m.keys.help):
		m.state = StateHelp
		return nil, true
	case key.Matches(msg, m.keys.commandPalette):
		m.openCommandPalette()
		return nil, true
	case key.Matches(msg, m.keys.refresh):
		return m.refreshAllCmd(), true
	case key.Matches(msg, m.keys.resetLayout):
		m.resetLayout()
		return nil, true
	case key.Matches(msg, m.keys.focusNext):
		m.cycleFocus(1)
		return nil, true
	case key.Matches(msg, m.keys.focusPrev):
		m.cycleFocus(-1)
		return nil, true
	case key.Matches(msg, m.keys.dockLeft):
		m.dockFocused(dock.PositionLeft)
		return nil, true
	case key.Matches(msg, m.keys.dockRight):
		m.dockFocused(dock.PositionRight)
		return nil, true
	case key.Matches(msg, m.keys.dockBottom):
		m.dockFocused(dock.PositionBottom)
		return nil, true
	case key.Matches(msg, m.keys.dockCycle):
		m.cycleDockFocused()
		return nil, true
	case key.Matches(msg, m.keys.floatPanel):
		m.dockFocused(dock.PositionFloat)
		return nil, true
	case key.Matches(msg, m.keys.togglePin):
		m.togglePinFocused()
		return nil, true
	case key.Matches(msg, m.keys.toggleSnap):
		m.toggleSnap()
		return nil, true
	case key.Matches(msg, m.keys.favorite):
		return m.toggleFavoriteCurrent(), true
	case key.Matches(msg, m.keys.copyRow):
		return m.copyCurrentRow(), true
	case key.Matches(msg, m.keys.exportReport):
		return m.exportReportCmd(), true
	}

	switch msg.String() {
	case "up", "k":
		m.scrollFocused(-1)
		return nil, true
	case "down", "j":
		m.scrollFocused(1)
		return nil, true
	case "pgup":
		m.scrollFocused(-pageScrollStep)
		return nil, true
	case "pgdown":
		m.scrollFocused(pageScrollStep)
		return nil, true
	case "enter":
		return m.activateFocused(), true
	}

	return nil, false
}

const pageScrollStep = 10

func (m *Model) cycleFocus(dir int) {
	ring := m.focusRing()
	if len(ring) == 0 {
		return
	}
	idx := 0
	for i, id := range ring {
		if id == m.focusID {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(ring)) % len(ring)
	m.focusID = ring[idx]
}

// cycleDockFocused steps the focused panel through the dock ring:
// left, right, bottom, float, back to left.
func (m *Model) cycleDockFocused() {
	p, ok := m.focusedPanel()
	if !ok {
		return
	}
	next := dock.PositionLeft
	switch p.Position {
	case dock.PositionLeft:
		next = dock.PositionRight
	case dock.PositionRight:
		next = dock.PositionBottom
	case dock.PositionBottom:
		next = dock.PositionFloat
	}
	m.dockFocused(next)
}

// dockFocused moves the focused panel by keyboard. Pinned panels
// refuse moves the same way they refuse drags.
func (m *Model) dockFocused(pos dock.Position) {
	p, ok := m.focusedPanel()
	if !ok {
		return
	}
	if p.Pinned {
		m.setToast(p.Title+" is pinned", toastWarning)
		return
	}
	if p.Position == pos {
		return
	}
	if err := m.store.Commit(p.ID, pos); err != nil {
		m.setToast("move panel: "+err.Error(), toastError)
	}
}

func (m *Model) togglePinFocused() {
	p, ok := m.focusedPanel()
	if !ok {
		return
	}
	if err := m.store.SetPinned(p.ID, !p.Pinned); err != nil {
		m.setToast("pin panel: "+err.Error(), toastError)
		return
	}
	if p.Pinned {
		m.setToast(p.Title+" unpinned", toastInfo)
	} else {
		m.setToast(p.Title+" pinned", toastInfo)
	}
}

func (m *Model) toggleSnap() {
	m.snapEnabled = !m.snapEnabled
	m.drag.SetThreshold(m.effectiveThreshold())
	if m.snapEnabled {
		m.setToast("edge snapping on", toastInfo)
	} else {
		m.setToast("edge snapping off", toastInfo)
	}
	m.savePrefs()
}

// savePrefs writes the runtime toggles back to the prefs file so the
// next launch starts where this one left off.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	snap := m.snapEnabled
	m.userPrefs.SnapEnabled = &snap
	m.userPrefs.LastWorkspace = m.workspace
	if err := prefs.Save(m.prefsPath, m.userPrefs); err != nil {
		m.setToast("save prefs: "+err.Error(), toastWarning)
	}
}

func (m *Model) toggleFavoriteCurrent() tea.Cmd {
	issue, ok := m.currentIssue()
	if !ok {
		m.setToast("no issue selected", toastInfo)
		return nil
	}
	next := !issue.Favorite
	m.favState.Set(issue.ID, next)
	m.issues[m.issueCursor].Favorite = next
	return tea.Batch(
		m.saveFavoritesCmd(m.favState),
		m.toggleFavoriteCmd(issue.ID, next),
	)
}

func (m *Model) resetLayout() {
	m.applyPreset("")
	m.setToast("layout reset", toastInfo)
}

func (m *Model) quitCmd() tea.Cmd {
	m.savePrefs()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	return tea.Sequence(m.saveLayoutCmd(), tea.Quit)
}
