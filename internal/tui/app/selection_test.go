package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/dock"
)

func TestSchemaRowsFollowExpansion(t *testing.T) {
	m := newTestModel(t)
	m.expanded = map[string]bool{}
	rows := m.schemaRows()
	if len(rows) != 2 {
		t.Fatalf("collapsed rows = %d, want 2 tables", len(rows))
	}

	m.expanded["orders"] = true
	rows = m.schemaRows()
	// orders + 3 columns + users
	if len(rows) != 5 {
		t.Fatalf("rows with orders expanded = %d, want 5", len(rows))
	}
	if rows[0].Column != nil || rows[0].Table != "orders" {
		t.Fatalf("row 0 = %+v, want orders table row", rows[0])
	}
	if rows[1].Column == nil || rows[1].Column.Name != "id" {
		t.Fatalf("row 1 = %+v, want id column", rows[1])
	}
	if rows[4].Column != nil || rows[4].Table != "users" {
		t.Fatalf("row 4 = %+v, want users table row", rows[4])
	}
}

func TestScrollFocusedClampsAtEnds(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"
	m.issueCursor = 0
	m.scrollFocused(-1)
	if m.issueCursor != 0 {
		t.Fatalf("cursor went below zero: %d", m.issueCursor)
	}
	m.scrollFocused(100)
	if m.issueCursor != len(m.issues)-1 {
		t.Fatalf("cursor = %d, want last issue %d", m.issueCursor, len(m.issues)-1)
	}
}

func TestActivateSchemaTableTogglesAndSelects(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "schema"
	m.expanded = map[string]bool{}
	m.selectedTable = ""
	m.schemaCursor = 1 // users, with everything collapsed

	cmd := m.activateFocused()
	if !m.expanded["users"] {
		t.Fatalf("enter should expand the users table")
	}
	if m.selectedTable != "users" {
		t.Fatalf("selectedTable = %q, want users", m.selectedTable)
	}
	if cmd == nil {
		t.Fatalf("expected a fetch for the uncached users table")
	}

	// Enter again collapses but keeps the selection, no refetch needed.
	m.samples["users"] = sampleOrderRows()
	cmd = m.activateFocused()
	if m.expanded["users"] {
		t.Fatalf("second enter should collapse the table")
	}
	if cmd != nil {
		t.Fatalf("reselecting the same table should not refetch")
	}
}

func TestActivateIssueJumpsSamplesToItsTable(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"
	m.issueCursor = 2 // i3 on users
	m.sampleRow = 3

	cmd := m.activateFocused()
	if m.selectedTable != "users" {
		t.Fatalf("selectedTable = %q, want users", m.selectedTable)
	}
	if m.sampleRow != 0 {
		t.Fatalf("sampleRow = %d, want 0 after table switch", m.sampleRow)
	}
	if cmd == nil {
		t.Fatalf("expected a fetch for the uncached users table")
	}
}

func TestCycleFocusWalksRing(t *testing.T) {
	m := newTestModel(t)
	// Ring: schema (docked left), then floats back to front.
	if m.focusID != "schema" {
		t.Fatalf("initial focus = %q, want schema", m.focusID)
	}
	m.cycleFocus(1)
	if m.focusID != "detail" {
		t.Fatalf("focus after next = %q, want detail", m.focusID)
	}
	m.cycleFocus(-1)
	if m.focusID != "schema" {
		t.Fatalf("focus after prev = %q, want schema", m.focusID)
	}
	m.cycleFocus(-1)
	if m.focusID != "samples" {
		t.Fatalf("focus wrap = %q, want samples", m.focusID)
	}
}

func TestDockFocusedByKeyboard(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"
	m.Update(keyPress("shift+right"))
	p, ok := m.store.Docked(dock.PositionRight)
	if !ok || p.ID != "issues" {
		t.Fatalf("docked right = %+v ok=%v, want issues", p, ok)
	}

	m.Update(keyPress("shift+up"))
	p, _ = m.store.Get("issues")
	if p.Position != dock.PositionFloat {
		t.Fatalf("float key left issues at %v", p.Position)
	}
}

func TestDockCycleWalksPositions(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"

	want := []dock.Position{
		dock.PositionLeft,
		dock.PositionRight,
		dock.PositionBottom,
		dock.PositionFloat,
		dock.PositionLeft,
	}
	for _, pos := range want {
		m.Update(keyPress("d"))
		p, _ := m.store.Get("issues")
		if p.Position != pos {
			t.Fatalf("dock cycle stopped at %v, want %v", p.Position, pos)
		}
	}
}

func TestDockFocusedPinnedRefuses(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"
	if err := m.store.SetPinned("issues", true); err != nil {
		t.Fatalf("SetPinned: %v", err)
	}
	m.Update(keyPress("shift+left"))
	p, _ := m.store.Get("issues")
	if p.Position != dock.PositionFloat {
		t.Fatalf("pinned panel moved to %v", p.Position)
	}
	if m.toast.Level != toastWarning {
		t.Fatalf("expected pinned warning toast, got %q", m.toast.Text)
	}
}

func TestTogglePinRoundTrip(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "schema"
	m.Update(keyPress("p"))
	p, _ := m.store.Get("schema")
	if !p.Pinned {
		t.Fatalf("first toggle should pin")
	}
	if m.toast.Text != "Schema pinned" {
		t.Fatalf("toast = %q, want Schema pinned", m.toast.Text)
	}
	m.Update(keyPress("p"))
	p, _ = m.store.Get("schema")
	if p.Pinned {
		t.Fatalf("second toggle should unpin")
	}
}

func TestToggleSnapUpdatesThreshold(t *testing.T) {
	m := newTestModel(t)
	if !m.snapEnabled {
		t.Fatalf("snap should default on")
	}
	m.Update(keyPress("s"))
	if m.snapEnabled {
		t.Fatalf("toggle should disable snapping")
	}
	if m.drag.Threshold() != 0 {
		t.Fatalf("threshold with snap off = %d, want 0", m.drag.Threshold())
	}
	m.Update(keyPress("s"))
	if !m.snapEnabled || m.drag.Threshold() != m.cfg.Dock.Threshold {
		t.Fatalf("snap back on: enabled=%v threshold=%d", m.snapEnabled, m.drag.Threshold())
	}
}

func TestResetLayoutRestoresPreset(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "schema"
	m.Update(keyPress("shift+right"))
	if _, ok := m.store.Docked(dock.PositionLeft); ok {
		t.Fatalf("schema should have left the dock")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	p, ok := m.store.Docked(dock.PositionLeft)
	if !ok || p.ID != "schema" {
		t.Fatalf("reset did not restore schema to the left dock: %+v", p)
	}
	if m.toast.Text != "layout reset" {
		t.Fatalf("toast = %q, want layout reset", m.toast.Text)
	}
}
