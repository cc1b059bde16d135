package entry

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/runenv"
)

func guardExiter(t *testing.T) {
	t.Helper()
	prevExiter := cli.OsExiter
	prevErrWriter := cli.ErrWriter
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	t.Cleanup(func() {
		cli.OsExiter = prevExiter
		cli.ErrWriter = prevErrWriter
	})
}

func setTestDirs(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(runenv.ConfigDirEnv, t.TempDir())
	t.Setenv(runenv.DataDirEnv, t.TempDir())
	t.Setenv(runenv.APIURLEnv, "")
}

func captureStdout(t *testing.T) func() string {
	t.Helper()
	prevStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = prevStdout })
	return func() string {
		_ = w.Close()
		var out bytes.Buffer
		_, _ = io.Copy(&out, r)
		_ = r.Close()
		os.Stdout = prevStdout
		return out.String()
	}
}

func TestRunVersionFlagExitsZero(t *testing.T) {
	guardExiter(t)
	setTestDirs(t)
	read := captureStdout(t)

	exit := Run([]string{"scour", "--version"}, "test")
	out := read()
	if exit != 0 {
		t.Fatalf("exit = %d", exit)
	}
	if !strings.Contains(out, "scour test") {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRunVersionCommandWrites(t *testing.T) {
	guardExiter(t)
	setTestDirs(t)
	read := captureStdout(t)

	exit := Run([]string{"scour", "version"}, "1.0.0")
	out := read()
	if exit != 0 {
		t.Fatalf("exit = %d", exit)
	}
	if !strings.Contains(out, "scour 1.0.0") {
		t.Fatalf("stdout = %q", out)
	}
}

func TestRunUnknownCommandFails(t *testing.T) {
	guardExiter(t)
	setTestDirs(t)
	read := captureStdout(t)

	exit := Run([]string{"scour", "no-such-command"}, "test")
	_ = read()
	if exit == 0 {
		t.Fatalf("exit = 0, want nonzero")
	}
}

func TestLogLevelFromArgs(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"scour"}, ""},
		{[]string{"scour", "--log-level", "debug"}, "debug"},
		{[]string{"scour", "--log-level=warn"}, "warn"},
		{[]string{"scour", "--", "--log-level", "debug"}, ""},
		{[]string{"scour", "--log-level"}, ""},
	}
	for _, tc := range cases {
		if got := logLevelFromArgs(tc.args); got != tc.want {
			t.Errorf("logLevelFromArgs(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}
