package favorites

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStateSetAndHas(t *testing.T) {
	var state State
	if !state.Set("i-2", true) {
		t.Fatalf("expected add to change state")
	}
	if !state.Set("i-1", true) {
		t.Fatalf("expected add to change state")
	}
	if state.Set("i-1", true) {
		t.Fatalf("duplicate add should not change state")
	}
	if !state.Has("i-1") || !state.Has("i-2") {
		t.Fatalf("state = %#v", state)
	}
	if state.IssueIDs[0] != "i-1" {
		t.Fatalf("ids should be sorted, got %v", state.IssueIDs)
	}
	if !state.Set("i-1", false) {
		t.Fatalf("expected remove to change state")
	}
	if state.Set("i-1", false) {
		t.Fatalf("removing absent id should not change state")
	}
	if state.Has("i-1") {
		t.Fatalf("i-1 should be gone")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	store := FileStore{Path: path}
	ctx := context.Background()

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load on missing file error: %v", err)
	}
	if len(loaded.IssueIDs) != 0 {
		t.Fatalf("missing file should yield empty state, got %#v", loaded)
	}

	state := State{IssueIDs: []string{"i-9", "i-1"}}
	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	loaded, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(loaded.IssueIDs) != 2 || loaded.IssueIDs[0] != "i-1" {
		t.Fatalf("loaded = %#v", loaded)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Fatalf("Save should stamp UpdatedAt")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("perm = %o, want 600", perm)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := (FileStore{Path: path}).Load(context.Background()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFileStorePathValidation(t *testing.T) {
	if _, err := (FileStore{}).Load(context.Background()); err != ErrDisabled {
		t.Fatalf("empty path error = %v, want ErrDisabled", err)
	}
	if err := (FileStore{Path: "relative.json"}).Save(context.Background(), State{}); err == nil {
		t.Fatalf("expected error for relative path")
	}
}
