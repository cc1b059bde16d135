package root

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/runenv"
)

func TestDefaultDependencies(t *testing.T) {
	deps := DefaultDependencies("1.0.0")
	if deps.Version != "1.0.0" {
		t.Errorf("Version = %q", deps.Version)
	}
	if deps.AppName != "scour" {
		t.Errorf("AppName = %q", deps.AppName)
	}
	if deps.Stdout != os.Stdout || deps.Stderr != os.Stderr {
		t.Errorf("expected process stdio")
	}
}

func TestResolveAPIPrecedence(t *testing.T) {
	base := config.APIConfig{BaseURL: "http://file.example", Token: "file-token", TimeoutSeconds: 5}

	got := ResolveAPI(base, "")
	if got.BaseURL != "http://file.example" || got.Token != "file-token" {
		t.Fatalf("file config not kept: %+v", got)
	}

	t.Setenv(runenv.APIURLEnv, "http://env.example")
	t.Setenv(runenv.APITokenEnv, "env-token")
	t.Setenv(runenv.RequestTimeoutEnv, "30s")
	got = ResolveAPI(base, "")
	if got.BaseURL != "http://env.example" {
		t.Errorf("env url not applied: %q", got.BaseURL)
	}
	if got.Token != "env-token" {
		t.Errorf("env token not applied: %q", got.Token)
	}
	if got.TimeoutSeconds != 30 {
		t.Errorf("env timeout not applied: %d", got.TimeoutSeconds)
	}

	got = ResolveAPI(base, "http://flag.example")
	if got.BaseURL != "http://flag.example" {
		t.Errorf("flag should win over env: %q", got.BaseURL)
	}
}

func TestNewAPIClientDefaults(t *testing.T) {
	client := NewAPIClient(config.APIConfig{BaseURL: "http://x", TimeoutSeconds: 7}, "2.0.0")
	if client.BaseURL != "http://x" {
		t.Errorf("BaseURL = %q", client.BaseURL)
	}
	if client.UserAgent != "scour/2.0.0" {
		t.Errorf("UserAgent = %q", client.UserAgent)
	}
	if client.HTTPClient == nil || client.HTTPClient.Timeout.Seconds() != 7 {
		t.Errorf("timeout not applied: %+v", client.HTTPClient)
	}
}

func TestResolveConfigPathFlagWins(t *testing.T) {
	got, err := ResolveConfigPath("/tmp/custom.yml", t.TempDir())
	if err != nil {
		t.Fatalf("ResolveConfigPath: %v", err)
	}
	if got != "/tmp/custom.yml" {
		t.Fatalf("path = %q", got)
	}
}

func TestResolveConfigPathPrefersProjectFile(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, ".scour.yml")
	if err := os.WriteFile(project, []byte("ui:\n  theme: dark\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ResolveConfigPath("", dir)
	if err != nil {
		t.Fatalf("ResolveConfigPath: %v", err)
	}
	if got != project {
		t.Fatalf("path = %q, want %q", got, project)
	}
}

func TestResolveConfigPathFallsBackToGlobal(t *testing.T) {
	t.Setenv(runenv.ConfigDirEnv, t.TempDir())
	got, err := ResolveConfigPath("", t.TempDir())
	if err != nil {
		t.Fatalf("ResolveConfigPath: %v", err)
	}
	if filepath.Base(got) != "config.yml" {
		t.Fatalf("path = %q, want global config.yml", got)
	}
}
