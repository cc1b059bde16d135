package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/favorites"
)

type memFavorites struct {
	state   favorites.State
	loadErr error
	saveErr error
	saved   []favorites.State
}

func (s *memFavorites) Load(ctx context.Context) (favorites.State, error) {
	return s.state, s.loadErr
}

func (s *memFavorites) Save(ctx context.Context, state favorites.State) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, state)
	return nil
}

func TestFetchSchemaRoundTrip(t *testing.T) {
	m := newBareModel(t)
	cmd := m.fetchSchemaCmd()
	if cmd == nil {
		t.Fatalf("fetchSchemaCmd returned nil")
	}
	msg, ok := cmd().(schemaLoadedMsg)
	if !ok || msg.Err != nil {
		t.Fatalf("fetch = %+v", msg)
	}
	if msg.Schema.Dataset != "shop" {
		t.Fatalf("dataset = %q, want shop", msg.Schema.Dataset)
	}
}

func TestFetchIssuesCapturesFilterAtBuildTime(t *testing.T) {
	m := newBareModel(t)
	m.issueFilter.Severity = "error"
	cmd := m.fetchIssuesCmd()
	m.issueFilter.Severity = "info"

	msg := cmd().(issuesLoadedMsg)
	if msg.Err != nil {
		t.Fatalf("fetch error: %v", msg.Err)
	}
	if len(msg.Issues) != 2 {
		t.Fatalf("error issues = %d, want 2", len(msg.Issues))
	}
	for _, issue := range msg.Issues {
		if issue.Severity != "error" {
			t.Fatalf("filter leaked: got severity %q", issue.Severity)
		}
	}
}

func TestFetchInFlightGuard(t *testing.T) {
	m := newBareModel(t)
	if cmd := m.fetchIssuesCmd(); cmd == nil {
		t.Fatalf("first fetch should build")
	}
	if cmd := m.fetchIssuesCmd(); cmd != nil {
		t.Fatalf("second fetch while in flight should be nil")
	}
	m.endLoading("issues")
	if cmd := m.fetchIssuesCmd(); cmd == nil {
		t.Fatalf("fetch after completion should build again")
	}
}

func TestFetchSamplesRequiresTable(t *testing.T) {
	m := newBareModel(t)
	if cmd := m.fetchSamplesCmd(""); cmd != nil {
		t.Fatalf("empty table should not fetch")
	}
}

func TestFavoriteKeyTogglesOptimistically(t *testing.T) {
	m := newTestModel(t)
	m.focusID = "issues"
	m.issueCursor = 0

	_, cmd := m.Update(keyPress("f"))
	if cmd == nil {
		t.Fatalf("favorite toggle should sync to the backend")
	}
	if !m.issues[0].Favorite {
		t.Fatalf("issue not starred locally")
	}
	if !m.favState.Has("i1") {
		t.Fatalf("favorite state missing i1")
	}

	m.Update(keyPress("f"))
	if m.issues[0].Favorite {
		t.Fatalf("second toggle should unstar")
	}
	if m.favState.Has("i1") {
		t.Fatalf("favorite state kept i1 after unstar")
	}
}

func TestFavoritesStoreSeedsState(t *testing.T) {
	favs := &memFavorites{state: favorites.State{IssueIDs: []string{"i2"}}}
	m, err := NewModel(Options{
		Client:    newTestClient(),
		Workspace: "test",
		Config:    config.Defaults(),
		Favorites: favs,
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	cmd := m.loadFavoritesCmd()
	if cmd == nil {
		t.Fatalf("loadFavoritesCmd returned nil with a store attached")
	}
	m.Update(cmd())
	if !m.favState.Has("i2") {
		t.Fatalf("favorites state not loaded")
	}

	m.Update(issuesLoadedMsg{Issues: sampleIssues()})
	for _, issue := range m.issues {
		if issue.ID == "i2" && !issue.Favorite {
			t.Fatalf("loaded favorites not applied to issues")
		}
	}
}

func TestSaveFavoritesWarnsOnError(t *testing.T) {
	favs := &memFavorites{saveErr: errors.New("disk full")}
	m, err := NewModel(Options{
		Client:    newTestClient(),
		Workspace: "test",
		Config:    config.Defaults(),
		Favorites: favs,
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}

	cmd := m.saveFavoritesCmd(favorites.State{IssueIDs: []string{"i1"}})
	msg, ok := cmd().(WarningMsg)
	if !ok {
		t.Fatalf("save error should warn, got %T", msg)
	}
	if !strings.Contains(msg.Message, "favorite kept for this session only") {
		t.Fatalf("warning = %q", msg.Message)
	}
}

func TestRefreshAllFetchesSelectedTable(t *testing.T) {
	m := newTestModel(t)
	m.loading = map[string]bool{}
	delete(m.samples, "orders")
	if cmd := m.refreshAllCmd(); cmd == nil {
		t.Fatalf("refresh should batch fetches")
	}
	if !m.loading["samples:orders"] {
		t.Fatalf("refresh skipped the selected table")
	}
}
