package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/favorites"
	"github.com/scourlabs/scour/internal/limits"
)

// Fetch commands capture their inputs up front; the closures run off
// the update goroutine and must not touch the model.

func (m *Model) fetchSchemaCmd() tea.Cmd {
	if !m.beginLoading("schema") {
		return nil
	}
	client := m.client
	timeout := m.cfg.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		schema, err := client.Schema(ctx)
		return schemaLoadedMsg{Schema: schema, Err: err}
	}
}

func (m *Model) fetchIssuesCmd() tea.Cmd {
	if !m.beginLoading("issues") {
		return nil
	}
	client := m.client
	timeout := m.cfg.API.Timeout()
	filter := m.issueFilter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		issues, err := client.Issues(ctx, filter)
		return issuesLoadedMsg{Issues: issues, Err: err}
	}
}

func (m *Model) fetchSamplesCmd(table string) tea.Cmd {
	if table == "" {
		return nil
	}
	if !m.beginLoading("samples:" + table) {
		return nil
	}
	client := m.client
	timeout := m.cfg.API.Timeout()
	rows := limits.ClampSampleRows(0)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		set, err := client.Samples(ctx, table, rows)
		return samplesLoadedMsg{Table: table, Set: set, Err: err}
	}
}

func (m *Model) fetchMetaCmd() tea.Cmd {
	if !m.beginLoading("meta") {
		return nil
	}
	client := m.client
	timeout := m.cfg.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		meta, err := client.Meta(ctx)
		return metaLoadedMsg{Meta: meta, Err: err}
	}
}

func (m *Model) loadFavoritesCmd() tea.Cmd {
	if m.favs == nil {
		return nil
	}
	if !m.beginLoading("favorites") {
		return nil
	}
	store := m.favs
	timeout := m.cfg.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		state, err := store.Load(ctx)
		return favoritesLoadedMsg{State: state, Err: err}
	}
}

// toggleFavoriteCmd flips the flag on the backend. The local state is
// already updated when this runs; the result reconciles or warns.
func (m *Model) toggleFavoriteCmd(issueID string, favorite bool) tea.Cmd {
	client := m.client
	timeout := m.cfg.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		issue, err := client.ToggleFavorite(ctx, issueID, favorite)
		return favoriteToggledMsg{Issue: issue, Err: err}
	}
}

func (m *Model) saveFavoritesCmd(state favorites.State) tea.Cmd {
	if m.favs == nil {
		return nil
	}
	store := m.favs
	timeout := m.cfg.API.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := store.Save(ctx, state); err != nil {
			return WarningMsg{Message: "favorite kept for this session only: " + err.Error()}
		}
		return nil
	}
}

// refreshAllCmd re-fetches everything the dashboard shows.
func (m *Model) refreshAllCmd() tea.Cmd {
	cmds := []tea.Cmd{
		m.fetchSchemaCmd(),
		m.fetchIssuesCmd(),
		m.fetchMetaCmd(),
		m.spin.Tick,
	}
	if m.selectedTable != "" {
		cmds = append(cmds, m.fetchSamplesCmd(m.selectedTable))
	}
	return tea.Batch(cmds...)
}

// applyFavorites overlays locally starred issues onto a fresh fetch.
func applyFavorites(issues []api.Issue, state favorites.State) []api.Issue {
	if len(issues) == 0 || len(state.IssueIDs) == 0 {
		return issues
	}
	for i := range issues {
		if state.Has(issues[i].ID) {
			issues[i].Favorite = true
		}
	}
	return issues
}
