// Package entry is the process entry point shared by cmd/scour and the
// tests.
package entry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/cli/app"
	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/logging"
)

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	deps := root.DefaultDependencies(version)
	appName := deps.AppName

	mode := logging.ModeFromArgs(args)
	logCfg := logging.Config{}
	if path, err := root.ResolveConfigPath("", deps.WorkDir); err == nil {
		if cfg, err := config.Load(path); err == nil {
			logCfg = cfg.Logging
		} else {
			// Keep going with default logging so `scour config edit`
			// can still open a broken file.
			fmt.Fprintf(os.Stderr, "%s: load config: %v\n", appName, err)
		}
	}
	if level := logLevelFromArgs(args); level != "" {
		logCfg.Level = &level
	}

	closeLogger, err := logging.Init(context.Background(), logCfg, logging.InitOptions{
		App:     identity.AppSlug,
		Version: version,
		Mode:    mode,
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	if err := app.New(deps).Run(context.Background(), args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// logLevelFromArgs pre-scans for --log-level so the override applies
// before flag parsing installs the logger.
func logLevelFromArgs(args []string) string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		if value, ok := strings.CutPrefix(arg, "--log-level="); ok {
			return strings.TrimSpace(value)
		}
		if arg == "--log-level" && i+1 < len(args) {
			return strings.TrimSpace(args[i+1])
		}
	}
	return ""
}
