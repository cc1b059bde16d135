// Package app assembles the CLI command tree.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/cli/configcmd"
	"github.com/scourlabs/scour/internal/cli/dashboard"
	"github.com/scourlabs/scour/internal/cli/initcfg"
	"github.com/scourlabs/scour/internal/cli/layouts"
	"github.com/scourlabs/scour/internal/cli/root"
	versioncmd "github.com/scourlabs/scour/internal/cli/version"
)

// New builds the root command. Running it without a subcommand opens
// the dashboard.
func New(deps root.Dependencies) *cli.Command {
	flags := append(dashboard.Flags(),
		&cli.BoolFlag{Name: "version", Usage: "print the version and exit"},
	)
	return &cli.Command{
		Name:        deps.AppName,
		Usage:       "Review data-cleaning runs in a dockable panel workbench",
		Description: "Scour shows the schema, issues, and sample rows of a cleaning run as draggable panels. Run it without arguments to open the dashboard.",
		Writer:      deps.Stdout,
		ErrWriter:   deps.Stderr,
		Flags:       flags,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd != nil && cmd.Bool("version") {
				out := deps.Stdout
				if out == nil {
					out = io.Discard
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", deps.AppName, deps.Version)
				return ctx, cli.Exit("", 0)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if args := cmd.Args(); args.Len() > 0 {
				return cli.Exit(fmt.Sprintf("unknown command %q", args.First()), 2)
			}
			return dashboard.Run(ctx, cmd, deps)
		},
		Commands: []*cli.Command{
			layouts.Command(deps),
			initcfg.Command(deps),
			configcmd.Command(deps),
			versioncmd.Command(deps),
		},
	}
}
