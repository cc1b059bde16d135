package atomicfile

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSaveWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	data := []byte("hello")

	if err := Save(path, data, 0o600); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("content = %q, want %q", string(got), string(data))
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Fatalf("perm = %o, want 0600", info.Mode().Perm())
		}
	}
}

func TestSaveEmptyPath(t *testing.T) {
	if err := Save("", []byte("x"), 0o600); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	if err := Save(path, []byte("first"), 0o600); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := Save(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("Save() replace error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("content = %q, want %q", string(got), "second")
	}
}

func TestSaveJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	payload := map[string]int{"count": 3}

	if err := SaveJSON(path, payload, 0o600); err != nil {
		t.Fatalf("SaveJSON() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	want := "{\n  \"count\": 3\n}\n"
	if string(data) != want {
		t.Fatalf("content = %q, want %q", string(data), want)
	}
}
