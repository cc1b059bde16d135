package app

import (
	"fmt"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/tui/theme"
)

func (m *Model) renderIssuesBody(p dock.Panel, width, height int) string {
	if len(m.issues) == 0 {
		if m.loading["issues"] {
			return fitBodyLines([]string{m.loadingLine("issues")}, width, height)
		}
		note := "no issues found"
		if m.issueFilter.FavoriteOnly || m.issueFilter.Severity != "" {
			note = "no issues match the filter"
		}
		return fitBodyLines([]string{theme.ListDimmed.Render(note)}, width, height)
	}

	top := scrollWindow(m.issueCursor, len(m.issues), height)
	lines := make([]string, 0, height)
	for i := top; i < len(m.issues) && len(lines) < height; i++ {
		lines = append(lines, m.renderIssueRow(m.issues[i], i == m.issueCursor, p.ID == m.focusID))
	}
	return fitBodyLines(lines, width, height)
}

func (m *Model) renderIssueRow(issue api.Issue, current, focused bool) string {
	star := " "
	if issue.Favorite {
		star = theme.FavoriteMark.Render("★")
	}
	target := issue.Table
	if issue.Column != "" {
		target += "." + issue.Column
	}
	text := fmt.Sprintf("%s %s %s %s %s",
		severityMark(issue.Severity),
		star,
		theme.TreeTable.Render(target),
		issue.Summary,
		theme.ListDimmed.Render(fmt.Sprintf("×%d", issue.Count)),
	)
	if current && focused {
		return theme.ListSelected.Render("▌") + text
	}
	if current {
		return theme.ListDimmed.Render("▌") + text
	}
	return " " + text
}

func severityMark(severity string) string {
	switch severity {
	case "error":
		return theme.SeverityError.Render("✗")
	case "warning":
		return theme.SeverityWarning.Render("⚠")
	default:
		return theme.SeverityInfo.Render("ℹ")
	}
}
