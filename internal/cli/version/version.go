// Package version implements `scour version`, including the optional
// cleaning-service compatibility check.
package version

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/cli/output"
	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/config"
	compat "github.com/scourlabs/scour/internal/version"
)

// Command builds the `version` command.
func Command(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version and optionally check service compatibility",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "check", Usage: "query the cleaning service and verify compatibility"},
			&cli.BoolFlag{Name: "json", Usage: "emit machine-readable output"},
			&cli.StringFlag{Name: "api-url", Usage: "cleaning service base URL for --check"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, deps)
		},
	}
}

func run(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	start := time.Now()
	info := output.VersionInfo{Version: deps.Version}

	if cmd.Bool("check") {
		checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		checkService(checkCtx, cmd.String("api-url"), deps, &info)
	}

	if cmd.Bool("json") {
		meta := output.WithDuration(output.NewMeta("version", deps.Version), start)
		return output.WriteSuccess(deps.Stdout, meta, info)
	}

	if _, err := fmt.Fprintf(deps.Stdout, "%s %s\n", deps.AppName, deps.Version); err != nil {
		return err
	}
	if !cmd.Bool("check") {
		return nil
	}
	if info.CheckError != "" {
		_, err := fmt.Fprintf(deps.Stdout, "service: %s\n", info.CheckError)
		return err
	}
	status := "compatible"
	if info.Compatible == nil || !*info.Compatible {
		status = "incompatible (minimum " + compat.MinServiceVersion + ")"
	}
	_, err := fmt.Fprintf(deps.Stdout, "service: %s at %s, %s\n", info.ServiceVersion, info.ServiceURL, status)
	return err
}

func checkService(ctx context.Context, flagURL string, deps root.Dependencies, info *output.VersionInfo) {
	cfg := config.Defaults()
	if path, err := root.ResolveConfigPath("", deps.WorkDir); err == nil {
		if loaded, err := config.Load(path); err == nil {
			cfg = loaded
		}
	}
	apiCfg := root.ResolveAPI(cfg.API, flagURL)
	if apiCfg.BaseURL == "" {
		info.CheckError = "no service URL configured (set api.base_url or pass --api-url)"
		return
	}
	info.ServiceURL = apiCfg.BaseURL

	client := root.NewAPIClient(apiCfg, deps.Version)
	meta, err := client.Meta(ctx)
	if err != nil {
		info.CheckError = err.Error()
		return
	}
	info.ServiceVersion = meta.Version
	compatible := compat.CheckService(meta.Version) == nil
	info.Compatible = &compatible
}
