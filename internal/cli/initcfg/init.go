// Package initcfg implements `scour init`, the guided first-run setup.
package initcfg

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/cli/output"
	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/prefs"
)

// runForm is swapped in tests.
var runForm = func(form *huh.Form) error { return form.Run() }

// Command builds the `init` command.
func Command(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter config file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Usage: "cleaning service base URL"},
			&cli.StringFlag{Name: "workspace", Aliases: []string{"w"}, Usage: "workspace to open by default"},
			&cli.StringFlag{Name: "theme", Usage: "dashboard theme (dark or light)"},
			&cli.BoolFlag{Name: "local", Usage: "write " + identity.ProjectConfigFileYML + " in the current directory instead of the global config"},
			&cli.BoolFlag{Name: "force", Usage: "overwrite an existing config file"},
			&cli.BoolFlag{Name: "json", Usage: "emit machine-readable output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, deps)
		},
	}
}

type answers struct {
	apiURL    string
	workspace string
	theme     string
}

func run(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	start := time.Now()
	ans := answers{
		apiURL:    strings.TrimSpace(cmd.String("api-url")),
		workspace: strings.TrimSpace(cmd.String("workspace")),
		theme:     strings.TrimSpace(cmd.String("theme")),
	}
	if err := askMissing(&ans); err != nil {
		return err
	}
	if ans.theme != "" && ans.theme != "dark" && ans.theme != "light" {
		return fmt.Errorf("unknown theme %q (dark or light)", ans.theme)
	}

	path, err := configTarget(cmd.Bool("local"), deps.WorkDir)
	if err != nil {
		return err
	}
	if !cmd.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(renderConfig(ans)), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	var warnings []string
	if ans.workspace != "" {
		if err := saveDefaultWorkspace(ans.workspace); err != nil {
			warnings = append(warnings, fmt.Sprintf("save default workspace: %v", err))
		}
	}

	if cmd.Bool("json") {
		meta := output.WithDuration(output.NewMeta("init", deps.Version), start)
		return output.WriteSuccess(deps.Stdout, meta, output.ActionResult{
			Action:   "init",
			Status:   "ok",
			Message:  "config written",
			Warnings: warnings,
			Details: map[string]any{
				"path":      path,
				"workspace": ans.workspace,
				"theme":     ans.theme,
			},
		})
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	for _, warning := range warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", warning)
	}
	_, err = fmt.Fprintf(deps.Stdout, "Run '%s' to open the dashboard.\n", identity.CLIName)
	return err
}

// askMissing prompts for any value not supplied by flags.
func askMissing(ans *answers) error {
	var fields []huh.Field
	if ans.apiURL == "" {
		fields = append(fields,
			huh.NewInput().
				Title("Cleaning service URL").
				Description("Where scour-cleanerd listens, e.g. http://localhost:8800").
				Value(&ans.apiURL).
				Validate(validateServiceURL),
		)
	}
	if ans.workspace == "" {
		ans.workspace = "default"
		fields = append(fields,
			huh.NewInput().
				Title("Workspace name").
				Description("Layouts are saved per workspace").
				Value(&ans.workspace).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return errors.New("workspace name cannot be empty")
					}
					return nil
				}),
		)
	}
	if ans.theme == "" {
		ans.theme = "dark"
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions("dark", "light")...).
				Value(&ans.theme),
		)
	}
	if len(fields) == 0 {
		return nil
	}
	form := huh.NewForm(huh.NewGroup(fields...))
	if err := runForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("aborted by user")
		}
		return err
	}
	ans.apiURL = strings.TrimSpace(ans.apiURL)
	ans.workspace = strings.TrimSpace(ans.workspace)
	return nil
}

func validateServiceURL(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errors.New("service URL cannot be empty")
	}
	parsed, err := url.Parse(v)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return errors.New("expected an http(s) URL like http://localhost:8800")
	}
	return nil
}

func configTarget(local bool, workDir string) (string, error) {
	if local {
		if workDir == "" {
			return "", errors.New("cannot determine current directory")
		}
		return filepath.Join(workDir, identity.ProjectConfigFileYML), nil
	}
	dir, err := appdirs.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalConfigFile), nil
}

func saveDefaultWorkspace(workspace string) error {
	path, err := prefs.DefaultPath()
	if err != nil {
		return err
	}
	loaded, err := prefs.NewLoader(path).Load()
	if err != nil {
		loaded = prefs.Prefs{}
	}
	loaded.LastWorkspace = workspace
	return prefs.Save(path, loaded)
}

func renderConfig(ans answers) string {
	theme := ans.theme
	if theme == "" {
		theme = config.DefaultTheme
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Scour configuration. Generated by `%s init`.\n", identity.CLIName)
	b.WriteString("# Every key is optional; delete what you do not need.\n\n")
	b.WriteString("api:\n")
	fmt.Fprintf(&b, "  base_url: %s\n", ans.apiURL)
	b.WriteString("  # token: \"\"\n")
	b.WriteString("  # timeout_seconds: 10\n\n")
	b.WriteString("ui:\n")
	fmt.Fprintf(&b, "  theme: %s\n", theme)
	fmt.Fprintf(&b, "  # compact_width: %d\n\n", config.DefaultCompactWidth)
	b.WriteString("# dock:\n")
	fmt.Fprintf(&b, "#   threshold: %d\n", config.DefaultDockThreshold)
	b.WriteString("#   snap_enabled: true\n\n")
	b.WriteString("# keymap:\n")
	b.WriteString("#   command_palette: [\"ctrl+k\"]\n")
	b.WriteString("#   quit: [\"q\", \"ctrl+c\"]\n")
	return b.String()
}
