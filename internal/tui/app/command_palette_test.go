package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/dock"
)

func typeString(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestPaletteOpensWithAllEntries(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.state != StateCommandPalette {
		t.Fatalf("state = %v, want command palette", m.state)
	}
	if len(m.palette.entries) == 0 {
		t.Fatalf("palette opened with no entries")
	}
	if len(m.palette.matches) != len(m.palette.entries) {
		t.Fatalf("empty query matches = %d, want all %d", len(m.palette.matches), len(m.palette.entries))
	}
	var sawOrders, sawUsers bool
	for _, e := range m.palette.entries {
		switch e.Label {
		case "View samples: orders":
			sawOrders = true
		case "View samples: users":
			sawUsers = true
		}
	}
	if !sawOrders || !sawUsers {
		t.Fatalf("per-table entries missing (orders=%v users=%v)", sawOrders, sawUsers)
	}
}

func TestPaletteFilterAndRun(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	typeString(m, "right")

	if len(m.palette.matches) != 1 {
		t.Fatalf("matches for %q = %d, want 1", "right", len(m.palette.matches))
	}
	top := m.palette.entries[m.palette.matches[0].Index]
	if top.Label != "Dock panel right" {
		t.Fatalf("top match = %q, want Dock panel right", top.Label)
	}

	m.Update(keyPress("enter"))
	if m.state != StateWorkspace {
		t.Fatalf("palette should close on enter")
	}
	p, ok := m.store.Docked(dock.PositionRight)
	if !ok || p.ID != "issues" {
		t.Fatalf("docked right = %+v ok=%v, want issues", p, ok)
	}
}

func TestPaletteSelectTableAction(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	typeString(m, "users")

	if len(m.palette.matches) != 1 {
		t.Fatalf("matches for %q = %d, want 1", "users", len(m.palette.matches))
	}
	_, cmd := m.Update(keyPress("enter"))
	if m.selectedTable != "users" {
		t.Fatalf("selectedTable = %q, want users", m.selectedTable)
	}
	if cmd == nil {
		t.Fatalf("expected a fetch for the uncached users table")
	}
}

func TestPaletteEscCloses(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m.Update(keyPress("esc"))
	if m.state != StateWorkspace {
		t.Fatalf("state = %v, want workspace", m.state)
	}
}

func TestPaletteCursorMoves(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m.Update(keyPress("down"))
	m.Update(keyPress("down"))
	m.Update(keyPress("up"))
	if m.palette.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.palette.cursor)
	}
}

func TestPaletteNoMatches(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	typeString(m, "zzzzqx")
	if len(m.palette.matches) != 0 {
		t.Fatalf("matches = %d, want 0", len(m.palette.matches))
	}
	m.Update(keyPress("enter"))
	if m.state != StateWorkspace {
		t.Fatalf("enter with no match should still close")
	}
}

func TestSeverityFilterCycles(t *testing.T) {
	m := newTestModel(t)
	want := []string{"error", "warning", "info", ""}
	for _, expected := range want {
		cmd := m.cycleSeverityFilter()
		if m.issueFilter.Severity != expected {
			t.Fatalf("severity = %q, want %q", m.issueFilter.Severity, expected)
		}
		if cmd == nil {
			t.Fatalf("cycle should refetch issues")
		}
		// Let the in-flight guard clear for the next round.
		m.endLoading("issues")
	}
}

func TestFavoriteFilterToggles(t *testing.T) {
	m := newTestModel(t)
	m.issueCursor = 3
	cmd := m.toggleFavoriteFilter()
	if !m.issueFilter.FavoriteOnly {
		t.Fatalf("filter should be on")
	}
	if m.issueCursor != 0 {
		t.Fatalf("cursor should reset on filter change")
	}
	if cmd == nil {
		t.Fatalf("toggle should refetch issues")
	}
}

func TestResizeFocusedDockAndFloat(t *testing.T) {
	m := newTestModel(t)

	m.focusID = "schema"
	before, _ := m.store.Get("schema")
	m.resizeFocused(1)
	after, _ := m.store.Get("schema")
	if after.Frac <= before.Frac {
		t.Fatalf("dock frac did not grow: %v -> %v", before.Frac, after.Frac)
	}

	m.focusID = "issues"
	beforeFloat, _ := m.store.Get("issues")
	m.resizeFocused(1)
	afterFloat, _ := m.store.Get("issues")
	if afterFloat.Float.W != beforeFloat.Float.W+4 || afterFloat.Float.H != beforeFloat.Float.H+2 {
		t.Fatalf("float resize = %+v, want +4/+2 from %+v", afterFloat.Float, beforeFloat.Float)
	}

	m.resizeFocused(-1)
	shrunk, _ := m.store.Get("issues")
	if shrunk.Float != beforeFloat.Float {
		t.Fatalf("shrink did not undo grow: %+v vs %+v", shrunk.Float, beforeFloat.Float)
	}
}

func TestPaletteViewRendersEntries(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	out := m.viewCommandPalette()
	if out == "" {
		t.Fatalf("empty palette view")
	}
	if !containsAll(out, "Commands", "Dock panel left") {
		t.Fatalf("palette view missing expected content:\n%s", out)
	}
}
