package version

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/runenv"
)

func testDeps(t *testing.T, out *bytes.Buffer) root.Dependencies {
	t.Helper()
	t.Setenv(runenv.ConfigDirEnv, t.TempDir())
	t.Setenv(runenv.APIURLEnv, "")
	t.Setenv(runenv.APITokenEnv, "")
	return root.Dependencies{
		Version: "1.2.3",
		AppName: "scour",
		WorkDir: t.TempDir(),
		Stdout:  out,
		Stderr:  out,
	}
}

func metaServer(t *testing.T, version string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/meta" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"service":"scour-cleanerd","version":"` + version + `"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVersionPrints(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)

	if err := Command(deps).Run(context.Background(), []string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := out.String(); got != "scour 1.2.3\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestCheckCompatibleService(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	srv := metaServer(t, "0.5.0")

	err := Command(deps).Run(context.Background(), []string{"version", "--check", "--api-url", srv.URL})
	if err != nil {
		t.Fatalf("version --check: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "0.5.0") || !strings.Contains(got, "compatible") {
		t.Fatalf("output = %q", got)
	}
	if strings.Contains(got, "incompatible") {
		t.Fatalf("flagged compatible service: %q", got)
	}
}

func TestCheckIncompatibleService(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	srv := metaServer(t, "0.3.0")

	err := Command(deps).Run(context.Background(), []string{"version", "--check", "--api-url", srv.URL})
	if err != nil {
		t.Fatalf("version --check: %v", err)
	}
	if !strings.Contains(out.String(), "incompatible (minimum 0.4.0)") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestCheckWithoutServiceURL(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)

	err := Command(deps).Run(context.Background(), []string{"version", "--check"})
	if err != nil {
		t.Fatalf("version --check: %v", err)
	}
	if !strings.Contains(out.String(), "no service URL configured") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestCheckJSONEnvelope(t *testing.T) {
	var out bytes.Buffer
	deps := testDeps(t, &out)
	srv := metaServer(t, "0.4.0")

	err := Command(deps).Run(context.Background(), []string{"version", "--check", "--json", "--api-url", srv.URL})
	if err != nil {
		t.Fatalf("version --check --json: %v", err)
	}
	var env struct {
		Ok   bool `json:"ok"`
		Data struct {
			Version        string `json:"version"`
			ServiceVersion string `json:"service_version"`
			Compatible     *bool  `json:"compatible"`
		} `json:"data"`
		Meta struct {
			Command string `json:"command"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if !env.Ok || env.Meta.Command != "version" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Data.Version != "1.2.3" || env.Data.ServiceVersion != "0.4.0" {
		t.Fatalf("data = %+v", env.Data)
	}
	if env.Data.Compatible == nil || !*env.Data.Compatible {
		t.Fatalf("compatible = %v", env.Data.Compatible)
	}
}
