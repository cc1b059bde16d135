package app

import (
	"fmt"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/theme"
)

func (m *Model) renderSchemaBody(p dock.Panel, width, height int) string {
	rows := m.schemaRows()
	if len(rows) == 0 {
		if m.loading["schema"] {
			return fitBodyLines([]string{m.loadingLine("schema")}, width, height)
		}
		return fitBodyLines([]string{theme.ListDimmed.Render("no tables")}, width, height)
	}

	top := scrollWindow(m.schemaCursor, len(rows), height)
	lines := make([]string, 0, height)
	for i := top; i < len(rows) && len(lines) < height; i++ {
		lines = append(lines, m.renderSchemaRow(rows[i], i == m.schemaCursor, p.ID == m.focusID))
	}
	return fitBodyLines(lines, width, height)
}

func (m *Model) renderSchemaRow(row schemaRow, current, focused bool) string {
	var text string
	if row.Column == nil {
		marker := "▸"
		if m.expanded[row.Table] {
			marker = "▾"
		}
		text = fmt.Sprintf("%s %s", marker, theme.TreeTable.Render(row.Table))
		if table, ok := m.tableByName(row.Table); ok {
			text += theme.ListDimmed.Render(fmt.Sprintf(" (%d rows)", table.RowCount))
		}
		if row.Table == m.selectedTable {
			text += theme.FavoriteMark.Render(" ●")
		}
	} else {
		text = fmt.Sprintf("  %s %s %s",
			theme.TreeColumn.Render(row.Column.Name),
			theme.TreeType.Render(row.Column.Type),
			theme.ListDimmed.Render(fmt.Sprintf("%.1f%% null", row.Column.NullPct)),
		)
	}
	if current && focused {
		return theme.ListSelected.Render("▌") + text
	}
	if current {
		return theme.ListDimmed.Render("▌") + text
	}
	return " " + text
}

func (m *Model) tableByName(name string) (api.Table, bool) {
	for i := range m.schema.Tables {
		if m.schema.Tables[i].Name == name {
			return m.schema.Tables[i], true
		}
	}
	return api.Table{}, false
}
