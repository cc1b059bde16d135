package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scourlabs/scour/internal/tui/theme"
)

func (m *Model) renderDetailBody(width, height int) string {
	issue, ok := m.currentIssue()
	if !ok {
		return fitBodyLines([]string{theme.ListDimmed.Render("select an issue to inspect")}, width, height)
	}

	target := issue.Table
	if issue.Column != "" {
		target += "." + issue.Column
	}
	favorite := "no"
	if issue.Favorite {
		favorite = "yes ★"
	}

	lines := []string{
		detailField("Rule", issue.Rule),
		detailField("Target", target),
		detailField("Severity", issue.Severity) + " " + severityMark(issue.Severity),
		detailField("Rows", fmt.Sprintf("%d", issue.Count)),
		detailField("Favorite", favorite),
		"",
	}
	summary := lipgloss.NewStyle().Width(width).Render(issue.Summary)
	lines = append(lines, strings.Split(summary, "\n")...)
	return fitBodyLines(lines, width, height)
}

func detailField(label, value string) string {
	return theme.DialogLabel.Render(label+":") + " " + theme.DialogValue.Render(value)
}
