package layoutstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scourlabs/scour/internal/dock"
)

func sampleLayout() dock.Layout {
	return dock.Layout{Panels: []dock.Panel{
		{ID: "schema", Title: "Schema", Kind: dock.KindSchema, Position: dock.PositionLeft, Frac: 0.25},
		{ID: "issues", Title: "Issues", Kind: dock.KindIssues, Position: dock.PositionFloat,
			Float: dock.Rect{X: 10, Y: 5, W: 40, H: 12}, LastFloat: dock.Rect{X: 10, Y: 5, W: 40, H: 12}, Z: 1},
	}}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	snap := FromLayout("default", sampleLayout())
	if err := store.Save(context.Background(), snap); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := NewStore(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("NewStore(load) error: %v", err)
	}
	if err := loaded.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	got, ok := loaded.Snapshot("default")
	if !ok {
		t.Fatalf("expected snapshot")
	}
	if got.SchemaVersion != CurrentSchemaVersion {
		t.Fatalf("SchemaVersion = %d, want %d", got.SchemaVersion, CurrentSchemaVersion)
	}
	if got.SavedAt.IsZero() {
		t.Fatalf("SavedAt not stamped")
	}
	layout, dropped := got.ToLayout()
	if len(dropped) != 0 {
		t.Fatalf("dropped = %v, want none", dropped)
	}
	if len(layout.Panels) != 2 {
		t.Fatalf("restored %d panels, want 2", len(layout.Panels))
	}
	if layout.Panels[1].Float != (dock.Rect{X: 10, Y: 5, W: 40, H: 12}) {
		t.Fatalf("float frame = %#v", layout.Panels[1].Float)
	}
}

func TestStoreQuarantinesCorruptSnapshot(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	bad := filepath.Join(base, "broken"+snapshotExt)
	if err := os.WriteFile(bad, []byte("not gzip"), 0o600); err != nil {
		t.Fatalf("write corrupt snapshot: %v", err)
	}
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := store.Snapshot("broken"); ok {
		t.Fatalf("corrupt snapshot loaded")
	}
	if _, err := os.Stat(bad); !os.IsNotExist(err) {
		t.Fatalf("corrupt snapshot still in place, err=%v", err)
	}
	entries, err := os.ReadDir(filepath.Join(base, quarantineDirName))
	if err != nil || len(entries) != 1 {
		t.Fatalf("quarantine entries = %v, err=%v", entries, err)
	}
}

func TestStoreQuarantinesSchemaInvalidSnapshot(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	// Structurally valid gzip+json but failing the schema: a panel
	// with an unknown position enum.
	snap := Snapshot{
		SchemaVersion: CurrentSchemaVersion,
		Workspace:     "bad",
		SavedAt:       time.Now().UTC(),
		Panels: []PanelState{
			{ID: "p", Kind: "issues", Position: "sideways"},
		},
	}
	data, err := encodeSnapshot(&snap)
	if err != nil {
		t.Fatalf("encodeSnapshot() error: %v", err)
	}
	path := filepath.Join(base, "bad"+snapshotExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := store.Snapshot("bad"); ok {
		t.Fatalf("schema-invalid snapshot loaded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("invalid snapshot still in place, err=%v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if err := store.Save(context.Background(), FromLayout("ws", sampleLayout())); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	store.Delete("ws")
	if _, ok := store.Snapshot("ws"); ok {
		t.Fatalf("expected snapshot to be deleted")
	}
	if _, err := os.Stat(filepath.Join(base, "ws"+snapshotExt)); !os.IsNotExist(err) {
		t.Fatalf("snapshot file still on disk, err=%v", err)
	}
}

func TestStoreGCExpiresByTTL(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base, TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	old := FromLayout("old", sampleLayout())
	old.SavedAt = time.Now().UTC().Add(-2 * time.Hour)
	if err := store.Save(context.Background(), old); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	fresh := FromLayout("fresh", sampleLayout())
	if err := store.Save(context.Background(), fresh); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.GC(context.Background()); err != nil {
		t.Fatalf("GC() error: %v", err)
	}
	if _, ok := store.Snapshot("old"); ok {
		t.Fatalf("expected old snapshot to expire")
	}
	if _, ok := store.Snapshot("fresh"); !ok {
		t.Fatalf("expected fresh snapshot to survive")
	}
}

func TestStoreGCEnforcesDiskCap(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base, MaxDiskBytes: 1, TTL: DefaultTTL})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	oldest := FromLayout("oldest", sampleLayout())
	oldest.SavedAt = time.Now().UTC().Add(-time.Hour)
	if err := store.Save(context.Background(), oldest); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	newest := FromLayout("newest", sampleLayout())
	if err := store.Save(context.Background(), newest); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.GC(context.Background()); err != nil {
		t.Fatalf("GC() error: %v", err)
	}
	if _, ok := store.Snapshot("oldest"); ok {
		t.Fatalf("expected oldest snapshot evicted first")
	}
}

func TestSaveRejectsInvalidWorkspace(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(Config{BaseDir: base})
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	snap := FromLayout("../escape", sampleLayout())
	if err := store.Save(context.Background(), snap); err == nil {
		t.Fatalf("expected error for invalid workspace name")
	}
}

func TestSanitizeWorkspace(t *testing.T) {
	if _, err := SanitizeWorkspace(""); err == nil {
		t.Fatalf("expected error for empty workspace")
	}
	if _, err := SanitizeWorkspace("has space"); err == nil {
		t.Fatalf("expected error for workspace with space")
	}
	got, err := SanitizeWorkspace("  team-a_1  ")
	if err != nil {
		t.Fatalf("SanitizeWorkspace() error: %v", err)
	}
	if got != "team-a_1" {
		t.Fatalf("SanitizeWorkspace() = %q, want %q", got, "team-a_1")
	}
}

func TestToLayoutDropsUnparseableEntries(t *testing.T) {
	snap := Snapshot{
		SchemaVersion: CurrentSchemaVersion,
		Workspace:     "ws",
		Panels: []PanelState{
			{ID: "good", Kind: "issues", Position: "left"},
			{ID: "badkind", Kind: "mystery", Position: "left"},
			{ID: "badpos", Kind: "issues", Position: "sideways"},
		},
	}
	layout, dropped := snap.ToLayout()
	if len(layout.Panels) != 1 || layout.Panels[0].ID != "good" {
		t.Fatalf("layout = %#v, want only good panel", layout.Panels)
	}
	if len(dropped) != 2 || dropped[0] != "badkind" || dropped[1] != "badpos" {
		t.Fatalf("dropped = %v, want [badkind badpos]", dropped)
	}
}

func TestValidateJSONRejectsGarbage(t *testing.T) {
	if err := ValidateJSON([]byte("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if err := ValidateJSON([]byte("{")); err == nil {
		t.Fatalf("expected error for malformed json")
	}
	err := ValidateJSON([]byte(`{"workspace":"w","panels":[]}`))
	if err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected schema validation error, got %v", err)
	}
}
