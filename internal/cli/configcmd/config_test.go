package configcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/runenv"
)

func testDeps(t *testing.T, out *bytes.Buffer) root.Dependencies {
	t.Helper()
	t.Setenv(runenv.ConfigDirEnv, t.TempDir())
	return root.Dependencies{
		Version: "test",
		AppName: "scour",
		WorkDir: t.TempDir(),
		Stdout:  out,
		Stderr:  out,
	}
}

func TestPathPrintsGlobalDefault(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)

	if err := Command(deps).Run(context.Background(), []string{"config", "path"}); err != nil {
		t.Fatalf("config path: %v", err)
	}
	got := strings.TrimSpace(out.String())
	if filepath.Base(got) != "config.yml" {
		t.Fatalf("path = %q", got)
	}
}

func TestPathPrefersProjectConfig(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	project := filepath.Join(deps.WorkDir, ".scour.yml")
	if err := os.WriteFile(project, []byte("ui:\n  theme: light\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := Command(deps).Run(context.Background(), []string{"config", "path"}); err != nil {
		t.Fatalf("config path: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != project {
		t.Fatalf("path = %q, want %q", got, project)
	}
}

func TestEditRunsEditorWithArgs(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "myeditor --wait")

	var gotArgv []string
	prev := runEditor
	runEditor = func(ctx context.Context, deps root.Dependencies, argv []string) error {
		gotArgv = argv
		return nil
	}
	t.Cleanup(func() { runEditor = prev })

	if err := Command(deps).Run(context.Background(), []string{"config", "edit"}); err != nil {
		t.Fatalf("config edit: %v", err)
	}
	if len(gotArgv) != 3 || gotArgv[0] != "myeditor" || gotArgv[1] != "--wait" {
		t.Fatalf("argv = %v", gotArgv)
	}
	if filepath.Base(gotArgv[2]) != "config.yml" {
		t.Fatalf("argv = %v", gotArgv)
	}
}

func TestEditSeedsMissingConfig(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "true")

	var editedPath string
	prev := runEditor
	runEditor = func(ctx context.Context, deps root.Dependencies, argv []string) error {
		editedPath = argv[len(argv)-1]
		return nil
	}
	t.Cleanup(func() { runEditor = prev })

	if err := Command(deps).Run(context.Background(), []string{"config", "edit"}); err != nil {
		t.Fatalf("config edit: %v", err)
	}
	data, err := os.ReadFile(editedPath)
	if err != nil {
		t.Fatalf("config not seeded: %v", err)
	}
	if !strings.Contains(string(data), "Scour configuration") {
		t.Fatalf("seed content = %q", string(data))
	}
}

func TestEditVisualWinsOverEditor(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	t.Setenv("VISUAL", "visual-editor")
	t.Setenv("EDITOR", "plain-editor")

	var gotArgv []string
	prev := runEditor
	runEditor = func(ctx context.Context, deps root.Dependencies, argv []string) error {
		gotArgv = argv
		return nil
	}
	t.Cleanup(func() { runEditor = prev })

	if err := Command(deps).Run(context.Background(), []string{"config", "edit"}); err != nil {
		t.Fatalf("config edit: %v", err)
	}
	if len(gotArgv) == 0 || gotArgv[0] != "visual-editor" {
		t.Fatalf("argv = %v", gotArgv)
	}
}

func TestEditRejectsUnparseableEditor(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", `broken "quote`)

	err := Command(deps).Run(context.Background(), []string{"config", "edit"})
	if err == nil || !strings.Contains(err.Error(), "parse editor command") {
		t.Fatalf("err = %v", err)
	}
}

func TestEditRejectsSelfReferentialEditor(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "/usr/local/bin/scour config edit")

	err := Command(deps).Run(context.Background(), []string{"config", "edit"})
	if err == nil || !strings.Contains(err.Error(), "points back at") {
		t.Fatalf("err = %v", err)
	}
}
