package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/atomicfile"
)

// copyCurrentRow puts the selected sample row on the system clipboard
// as tab-separated values.
func (m *Model) copyCurrentRow() tea.Cmd {
	set, ok := m.currentSampleSet()
	if !ok || len(set.Rows) == 0 {
		m.setToast("no sample rows to copy", toastInfo)
		return nil
	}
	row := m.sampleRow
	if row < 0 || row >= len(set.Rows) {
		row = 0
	}
	text := strings.Join(set.Rows[row], "\t")
	return func() tea.Msg {
		return rowCopiedMsg{Err: clipboard.WriteAll(text)}
	}
}

// exportReportCmd renders the current findings to a markdown file
// under the data directory.
func (m *Model) exportReportCmd() tea.Cmd {
	report := m.buildReport()
	workspace := m.workspace
	return func() tea.Msg {
		dir, err := appdirs.DataDir()
		if err != nil {
			return reportSavedMsg{Err: err}
		}
		dir = filepath.Join(dir, "reports")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return reportSavedMsg{Err: err}
		}
		name := fmt.Sprintf("scour-%s-%s.md", workspace, time.Now().Format("20060102-150405"))
		path := filepath.Join(dir, name)
		if err := atomicfile.Save(path, []byte(report), 0o644); err != nil {
			return reportSavedMsg{Err: err}
		}
		return reportSavedMsg{Path: path}
	}
}

func (m *Model) buildReport() string {
	var b strings.Builder
	dataset := m.schema.Dataset
	if dataset == "" {
		dataset = m.workspace
	}
	fmt.Fprintf(&b, "# Scour report: %s\n\n", dataset)
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().Format(time.RFC3339))

	fmt.Fprintf(&b, "## Tables (%d)\n\n", len(m.schema.Tables))
	for _, table := range m.schema.Tables {
		fmt.Fprintf(&b, "- `%s`: %d rows, %d columns\n", table.Name, table.RowCount, len(table.Columns))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Issues (%d)\n\n", len(m.issues))
	for _, severity := range []string{"error", "warning", "info"} {
		group := issuesBySeverity(m.issues, severity)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s (%d)\n\n", severity, len(group))
		for _, issue := range group {
			star := " "
			if issue.Favorite {
				star = "*"
			}
			target := issue.Table
			if issue.Column != "" {
				target += "." + issue.Column
			}
			fmt.Fprintf(&b, "- [%s] `%s` %s: %s (%d rows)\n", star, target, issue.Rule, issue.Summary, issue.Count)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func issuesBySeverity(issues []api.Issue, severity string) []api.Issue {
	out := make([]api.Issue, 0, len(issues))
	for _, issue := range issues {
		if strings.EqualFold(issue.Severity, severity) {
			out = append(out, issue)
		}
	}
	return out
}
