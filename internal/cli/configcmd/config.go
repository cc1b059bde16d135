// Package configcmd implements `scour config`, small helpers around
// the on-disk config file.
package configcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/logging"
)

// runEditor is swapped in tests.
var runEditor = func(ctx context.Context, deps root.Dependencies, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Command builds the `config` command tree.
func Command(deps root.Dependencies) *cli.Command {
	configFlag := func() cli.Flag {
		return &cli.StringFlag{Name: "config", Usage: "config file to operate on"}
	}
	return &cli.Command{
		Name:  "config",
		Usage: "Locate or edit the Scour config file",
		Commands: []*cli.Command{
			{
				Name:  "path",
				Usage: "Print the config file path for this directory",
				Flags: []cli.Flag{configFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runPath(cmd, deps)
				},
			},
			{
				Name:  "edit",
				Usage: "Open the config file in $EDITOR",
				Flags: []cli.Flag{configFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runEdit(ctx, cmd, deps)
				},
			},
		},
	}
}

func runPath(cmd *cli.Command, deps root.Dependencies) error {
	path, err := root.ResolveConfigPath(cmd.String("config"), deps.WorkDir)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(deps.Stdout, path)
	return err
}

func runEdit(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	path, err := root.ResolveConfigPath(cmd.String("config"), deps.WorkDir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(starterConfig), 0o600); err != nil {
			return fmt.Errorf("seed config: %w", err)
		}
	}

	argv, err := editorArgv(path)
	if err != nil {
		return err
	}
	slog.Debug("config edit: launching editor",
		slog.String("cmd", logging.SanitizeCommand(strings.Join(argv, " "))))
	if err := runEditor(ctx, deps, argv); err != nil {
		return fmt.Errorf("editor %s: %w", argv[0], err)
	}
	return nil
}

// editorArgv builds the editor command line. $VISUAL wins over $EDITOR;
// both may carry arguments ("code --wait").
func editorArgv(path string) ([]string, error) {
	editor := strings.TrimSpace(os.Getenv("VISUAL"))
	if editor == "" {
		editor = strings.TrimSpace(os.Getenv("EDITOR"))
	}
	if editor == "" {
		editor = "vim"
	}
	args, err := shellquote.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", editor, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("editor command %q is empty", editor)
	}
	// EDITOR=scour would re-enter this command.
	if identity.IsCLICommandToken(filepath.Base(args[0])) {
		return nil, fmt.Errorf("editor command %q points back at %s", editor, identity.CLIName)
	}
	return append(args, path), nil
}

const starterConfig = `# Scour configuration. All keys are optional.
#
# api:
#   base_url: http://localhost:8800
#   token: ""
#   timeout_seconds: 10
#
# dock:
#   threshold: 8
#   snap_enabled: true
#
# ui:
#   theme: dark
#   compact_width: 80
#
# keymap:
#   command_palette: ["ctrl+k"]
#   quit: ["q", "ctrl+c"]
`
