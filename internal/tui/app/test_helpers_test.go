package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/config"
)

// fakeClient serves canned data so tests never touch the network.
type fakeClient struct {
	schema     api.Schema
	issues     []api.Issue
	samples    map[string]api.SampleSet
	meta       api.Meta
	schemaErr  error
	issuesErr  error
	samplesErr error
	metaErr    error
	toggled    []string
}

func (c *fakeClient) Schema(ctx context.Context) (api.Schema, error) {
	return c.schema, c.schemaErr
}

func (c *fakeClient) Issues(ctx context.Context, filter api.IssueFilter) ([]api.Issue, error) {
	if c.issuesErr != nil {
		return nil, c.issuesErr
	}
	out := make([]api.Issue, 0, len(c.issues))
	for _, issue := range c.issues {
		if filter.Severity != "" && issue.Severity != filter.Severity {
			continue
		}
		if filter.FavoriteOnly && !issue.Favorite {
			continue
		}
		if filter.Table != "" && issue.Table != filter.Table {
			continue
		}
		out = append(out, issue)
	}
	return out, nil
}

func (c *fakeClient) Samples(ctx context.Context, table string, limit int) (api.SampleSet, error) {
	if c.samplesErr != nil {
		return api.SampleSet{}, c.samplesErr
	}
	set, ok := c.samples[table]
	if !ok {
		return api.SampleSet{Table: table}, nil
	}
	return set, nil
}

func (c *fakeClient) ToggleFavorite(ctx context.Context, issueID string, favorite bool) (api.Issue, error) {
	c.toggled = append(c.toggled, issueID)
	for _, issue := range c.issues {
		if issue.ID == issueID {
			issue.Favorite = favorite
			return issue, nil
		}
	}
	return api.Issue{ID: issueID, Favorite: favorite}, nil
}

func (c *fakeClient) Meta(ctx context.Context) (api.Meta, error) {
	return c.meta, c.metaErr
}

func sampleSchema() api.Schema {
	return api.Schema{
		Dataset: "shop",
		Tables: []api.Table{
			{
				Name:     "orders",
				RowCount: 1200,
				Columns: []api.Column{
					{Name: "id", Type: "int64"},
					{Name: "email", Type: "string", NullPct: 4.2},
					{Name: "amount", Type: "float64"},
				},
			},
			{
				Name:     "users",
				RowCount: 300,
				Columns: []api.Column{
					{Name: "id", Type: "int64"},
					{Name: "name", Type: "string", NullPct: 0.5},
				},
			},
		},
	}
}

func sampleIssues() []api.Issue {
	return []api.Issue{
		{ID: "i1", Table: "orders", Column: "email", Rule: "not_null", Severity: "error", Summary: "null emails", Count: 51},
		{ID: "i2", Table: "orders", Column: "amount", Rule: "range", Severity: "warning", Summary: "negative amounts", Count: 3},
		{ID: "i3", Table: "users", Column: "name", Rule: "format", Severity: "info", Summary: "trailing spaces", Count: 12},
		{ID: "i4", Table: "users", Column: "id", Rule: "unique", Severity: "error", Summary: "duplicate ids", Count: 2},
		{ID: "i5", Table: "orders", Column: "email", Rule: "format", Severity: "warning", Summary: "invalid emails", Count: 9},
	}
}

func sampleOrderRows() api.SampleSet {
	return api.SampleSet{
		Table:   "orders",
		Columns: []string{"id", "email", "amount"},
		Rows: [][]string{
			{"1", "a@example.com", "10.50"},
			{"2", "", "23.00"},
			{"3", "c@example.com", "-4.00"},
			{"4", "d@example.com", "7.25"},
		},
	}
}

func newTestClient() *fakeClient {
	return &fakeClient{
		schema:  sampleSchema(),
		issues:  sampleIssues(),
		samples: map[string]api.SampleSet{"orders": sampleOrderRows()},
		meta:    api.Meta{Service: "scourd", Version: "0.5.0"},
	}
}

// newTestModel builds a model on the review preset with seeded data
// and a 120x40 terminal.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(Options{
		Client:    newTestClient(),
		Workspace: "test",
		Config:    config.Defaults(),
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.schema = sampleSchema()
	m.issues = sampleIssues()
	m.samples["orders"] = sampleOrderRows()
	m.selectedTable = "orders"
	m.expanded["orders"] = true
	return m
}

func pressAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motionAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func releaseAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyShiftUp}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
