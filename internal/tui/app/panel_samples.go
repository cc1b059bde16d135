package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/theme"
)

const sampleColMaxWidth = 24

func (m *Model) renderSamplesBody(p dock.Panel, width, height int) string {
	if m.selectedTable == "" {
		return fitBodyLines([]string{theme.ListDimmed.Render("select a table in the schema panel")}, width, height)
	}
	set, ok := m.currentSampleSet()
	if !ok {
		if m.loading["samples:"+m.selectedTable] {
			return fitBodyLines([]string{m.loadingLine(m.selectedTable + " rows")}, width, height)
		}
		return fitBodyLines([]string{theme.ListDimmed.Render("no samples for " + m.selectedTable)}, width, height)
	}
	if len(set.Rows) == 0 {
		return fitBodyLines([]string{theme.ListDimmed.Render(m.selectedTable + " is empty")}, width, height)
	}

	widths := sampleColumnWidths(set.Columns, set.Rows)
	lines := make([]string, 0, height)
	lines = append(lines, theme.TableHeader.Render(renderSampleCells(set.Columns, widths, false)))

	bodyRows := height - 1
	if bodyRows < 1 {
		bodyRows = 1
	}
	top := scrollWindow(m.sampleRow, len(set.Rows), bodyRows)
	focused := p.ID == m.focusID
	for i := top; i < len(set.Rows) && len(lines) < height; i++ {
		row := renderSampleCells(set.Rows[i], widths, true)
		if i == m.sampleRow && focused {
			lines = append(lines, theme.TableRowSelected.Render(row))
		} else {
			lines = append(lines, theme.TableRow.Render(row))
		}
	}
	return fitBodyLines(lines, width, height)
}

// sampleColumnWidths sizes each column to its widest cell, capped so
// one long value cannot starve the rest.
func sampleColumnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = runewidth.StringWidth(name)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > sampleColMaxWidth {
			widths[i] = sampleColMaxWidth
		}
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	return widths
}

func renderSampleCells(cells []string, widths []int, markNull bool) string {
	out := make([]string, 0, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if cell == "" && markNull {
			out = append(out, theme.ListDimmed.Render("∅")+strings.Repeat(" ", w-1))
			continue
		}
		cell = runewidth.Truncate(cell, w, "…")
		out = append(out, runewidth.FillRight(cell, w))
	}
	return strings.Join(out, "  ")
}

func sampleRowSummary(total, cursor int) string {
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("row %d/%d", cursor+1, total)
}
