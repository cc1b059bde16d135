package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/mouse"
)

// pendingDrag is a header press that has not moved yet. The drag
// session starts on the first motion so plain clicks stay clicks.
type pendingDrag struct {
	armed   bool
	panelID string
	at      dock.Point
}

// WantsMouseMotion keeps the motion filter open only while a drag is
// armed or active; idle motion is dropped before it reaches Update.
func (m *Model) WantsMouseMotion() bool {
	return m.pending.armed || m.drag.State() == dock.StateDragging
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Cmd, bool) {
	if m.state != StateWorkspace {
		return nil, true
	}
	pt := dock.Point{X: msg.X, Y: msg.Y - headerHeight}

	if m.drag.State() == dock.StateDragging {
		return m.handleDragMouse(msg, pt), true
	}

	if mouse.IsWheel(msg) {
		m.handleWheel(msg, pt)
		return nil, true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.handleWorkspacePress(msg, pt)
		return nil, true
	case tea.MouseActionMotion:
		return m.maybeStartDrag(pt), true
	case tea.MouseActionRelease:
		// Armed but never moved: the press already focused the panel.
		m.pending = pendingDrag{}
		return nil, true
	}
	return nil, true
}

func (m *Model) handleWorkspacePress(msg tea.MouseMsg, pt dock.Point) {
	if msg.Button != tea.MouseButtonLeft {
		m.pending = pendingDrag{}
		return
	}
	hit, ok := mouse.HitPanels(m.panelHits(), pt.X, pt.Y)
	if !ok {
		m.pending = pendingDrag{}
		m.clicks.ClearLastClick()
		return
	}
	m.focusID = hit.PanelID
	if p, ok := m.store.Get(hit.PanelID); ok && p.Position == dock.PositionFloat {
		_ = m.store.Raise(p.ID)
	}
	if hit.Region != mouse.RegionHeader {
		m.pending = pendingDrag{}
		m.clicks.ClearLastClick()
		return
	}
	if m.clicks.IsDoubleClick(hit, msg) {
		m.clicks.ClearLastClick()
		m.pending = pendingDrag{}
		m.popOutPanel(hit.PanelID)
		return
	}
	m.clicks.RecordClick(hit, msg)
	m.pending = pendingDrag{armed: true, panelID: hit.PanelID, at: pt}
}

// maybeStartDrag turns an armed press into a drag session on the
// first motion. The session starts at the press point so the preview
// math matches where the grab happened.
func (m *Model) maybeStartDrag(pt dock.Point) tea.Cmd {
	if !m.pending.armed {
		return nil
	}
	origin := m.pending.at
	panelID := m.pending.panelID
	m.pending = pendingDrag{}
	sess, err := m.drag.Start(panelID, origin)
	if err != nil {
		if errors.Is(err, dock.ErrPanelPinned) {
			if p, ok := m.store.Get(panelID); ok {
				m.setToast(p.Title+" is pinned", toastWarning)
			} else {
				m.setToast("panel is pinned", toastWarning)
			}
		}
		return nil
	}
	if _, err := m.drag.Update(sess.ID, pt); err != nil && !errors.Is(err, dock.ErrStaleSession) {
		m.setToast("drag: "+err.Error(), toastError)
	}
	return nil
}

func (m *Model) handleDragMouse(msg tea.MouseMsg, pt dock.Point) tea.Cmd {
	sess, ok := m.drag.Active()
	if !ok {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		_, _ = m.drag.Update(sess.ID, pt)
		return nil
	case tea.MouseActionPress:
		// A second button mid-drag aborts, same as esc.
		if msg.Button != tea.MouseButtonLeft {
			m.cancelDragSession(sess.ID)
		}
		return nil
	case tea.MouseActionRelease:
		result, err := m.drag.End(sess.ID, pt)
		if err != nil {
			m.setToast("drop failed: "+err.Error(), toastError)
			return nil
		}
		if result.Committed {
			m.setToast("docked "+result.Position.String(), toastInfo)
		}
		return nil
	}
	return nil
}

func (m *Model) handleWheel(msg tea.MouseMsg, pt dock.Point) {
	hit, ok := mouse.HitPanels(m.panelHits(), pt.X, pt.Y)
	if !ok {
		return
	}
	p, ok := m.store.Get(hit.PanelID)
	if !ok {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollPanelKind(p.Kind, -wheelScrollStep)
	case tea.MouseButtonWheelDown:
		m.scrollPanelKind(p.Kind, wheelScrollStep)
	}
}

const wheelScrollStep = 3

// cancelActiveDrag handles esc: abort the session, or just disarm a
// pending press. Reports whether anything was cancelled.
func (m *Model) cancelActiveDrag() bool {
	if sess, ok := m.drag.Active(); ok {
		m.cancelDragSession(sess.ID)
		return true
	}
	if m.pending.armed {
		m.pending = pendingDrag{}
		return true
	}
	return false
}

func (m *Model) cancelDragSession(sessionID string) {
	if err := m.drag.Cancel(sessionID); err != nil {
		m.setToast("cancel drag: "+err.Error(), toastError)
		return
	}
	m.setToast("drag cancelled", toastInfo)
}

// popOutPanel is the double-click action: docked panels float at
// their remembered frame, floating panels just come to the front.
func (m *Model) popOutPanel(id string) {
	p, ok := m.store.Get(id)
	if !ok {
		return
	}
	if p.Position == dock.PositionFloat {
		return
	}
	if p.Pinned {
		m.setToast(p.Title+" is pinned", toastWarning)
		return
	}
	if err := m.store.Commit(id, dock.PositionFloat); err != nil {
		m.setToast("float panel: "+err.Error(), toastError)
	}
}
