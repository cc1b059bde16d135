package mouse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const doubleClickThreshold = 350 * time.Millisecond

// Handler tracks click timing so the dashboard can tell a double-click
// on a panel from two unrelated clicks.
type Handler struct {
	lastClickAt      time.Time
	lastClickPanelID string
	lastClickButton  tea.MouseButton
}

// RecordClick remembers a click for double-click detection.
func (h *Handler) RecordClick(hit PanelHit, msg tea.MouseMsg) {
	h.lastClickAt = time.Now()
	h.lastClickPanelID = hit.PanelID
	h.lastClickButton = msg.Button
}

// ClearLastClick forgets the pending click, ending any double-click
// window.
func (h *Handler) ClearLastClick() {
	h.lastClickAt = time.Time{}
	h.lastClickPanelID = ""
	h.lastClickButton = tea.MouseButtonNone
}

// IsDoubleClick reports whether this click lands on the same panel
// with the same button inside the double-click window.
func (h *Handler) IsDoubleClick(hit PanelHit, msg tea.MouseMsg) bool {
	if hit.PanelID == "" {
		return false
	}
	if h.lastClickPanelID != hit.PanelID {
		return false
	}
	if h.lastClickButton != msg.Button {
		return false
	}
	if time.Since(h.lastClickAt) > doubleClickThreshold {
		return false
	}
	return true
}

// IsPrimaryClick reports a left-button press.
func IsPrimaryClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

// IsWheel reports a scroll-wheel event.
func IsWheel(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	default:
		return false
	}
}
