package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/dock"
)

// schemaRow is one visible line of the schema tree: a table, or a
// column of an expanded table.
type schemaRow struct {
	Table  string
	Column *api.Column
}

func (m *Model) schemaRows() []schemaRow {
	rows := make([]schemaRow, 0, len(m.schema.Tables))
	for i := range m.schema.Tables {
		table := &m.schema.Tables[i]
		rows = append(rows, schemaRow{Table: table.Name})
		if !m.expanded[table.Name] {
			continue
		}
		for j := range table.Columns {
			rows = append(rows, schemaRow{Table: table.Name, Column: &table.Columns[j]})
		}
	}
	return rows
}

func (m *Model) currentSchemaRow() (schemaRow, bool) {
	rows := m.schemaRows()
	if m.schemaCursor < 0 || m.schemaCursor >= len(rows) {
		return schemaRow{}, false
	}
	return rows[m.schemaCursor], true
}

func (m *Model) currentIssue() (api.Issue, bool) {
	if m.issueCursor < 0 || m.issueCursor >= len(m.issues) {
		return api.Issue{}, false
	}
	return m.issues[m.issueCursor], true
}

func (m *Model) currentSampleSet() (api.SampleSet, bool) {
	set, ok := m.samples[m.selectedTable]
	return set, ok
}

// selectTable switches the samples panel to a table, fetching rows on
// first visit.
func (m *Model) selectTable(table string) tea.Cmd {
	if table == "" || table == m.selectedTable {
		return nil
	}
	m.selectedTable = table
	m.sampleRow = 0
	if _, ok := m.samples[table]; ok {
		return nil
	}
	return tea.Batch(m.fetchSamplesCmd(table), m.spin.Tick)
}

// scrollFocused moves the cursor of whichever panel has focus.
func (m *Model) scrollFocused(delta int) {
	p, ok := m.focusedPanel()
	if !ok {
		return
	}
	m.scrollPanelKind(p.Kind, delta)
}

func (m *Model) scrollPanelKind(kind dock.PanelKind, delta int) {
	switch kind {
	case dock.KindSchema:
		m.schemaCursor = clampCursor(m.schemaCursor+delta, len(m.schemaRows()))
	case dock.KindIssues:
		m.issueCursor = clampCursor(m.issueCursor+delta, len(m.issues))
	case dock.KindSamples:
		if set, ok := m.currentSampleSet(); ok {
			m.sampleRow = clampCursor(m.sampleRow+delta, len(set.Rows))
		}
	}
}

// activateFocused is the enter action: schema rows expand and pick
// the sample table, issue rows jump the samples panel to their table.
func (m *Model) activateFocused() tea.Cmd {
	p, ok := m.focusedPanel()
	if !ok {
		return nil
	}
	switch p.Kind {
	case dock.KindSchema:
		row, ok := m.currentSchemaRow()
		if !ok {
			return nil
		}
		if row.Column == nil {
			m.expanded[row.Table] = !m.expanded[row.Table]
		}
		return m.selectTable(row.Table)
	case dock.KindIssues:
		issue, ok := m.currentIssue()
		if !ok {
			return nil
		}
		return m.selectTable(issue.Table)
	default:
		return nil
	}
}

func clampCursor(v, n int) int {
	if n <= 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
