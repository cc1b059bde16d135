// Package dashboard launches the panel workbench, the default command.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/favorites"
	"github.com/scourlabs/scour/internal/layoutstore"
	"github.com/scourlabs/scour/internal/prefs"
	"github.com/scourlabs/scour/internal/presets"
	"github.com/scourlabs/scour/internal/runenv"
	"github.com/scourlabs/scour/internal/tui/app"
	"github.com/scourlabs/scour/internal/tui/mouse"
)

const configWatchDebounce = 500 * time.Millisecond

// Flags returns the dashboard flags, installed on the root command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "workspace", Aliases: []string{"w"}, Usage: "workspace to open"},
		&cli.StringFlag{Name: "config", Usage: "config file to load instead of the default"},
		&cli.StringFlag{Name: "api-url", Usage: "cleaning service base URL", Sources: cli.EnvVars(runenv.APIURLEnv)},
		&cli.StringFlag{Name: "preset", Usage: "layout preset for workspaces without a saved layout"},
		&cli.BoolFlag{Name: "no-restore", Usage: "ignore the saved layout and start from the preset"},
		&cli.StringFlag{Name: "log-level", Usage: "override the log level (debug, info, warn, error)"},
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

// runDeps lets tests swap the process-touching pieces.
type runDeps struct {
	newModel   func(app.Options) (*app.Model, error)
	openInput  func() (*os.File, func(), error)
	newProgram func(tea.Model, ...tea.ProgramOption) programRunner
	watch      func(ctx context.Context, path string, debounce time.Duration) (<-chan struct{}, error)
}

var newProgramFn = func(model tea.Model, opts ...tea.ProgramOption) programRunner {
	return tea.NewProgram(model, opts...)
}

// Run launches the dashboard.
func Run(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	return runWith(ctx, cmd, deps, runDeps{})
}

func runWith(ctx context.Context, cmd *cli.Command, deps root.Dependencies, rd runDeps) error {
	if rd.newModel == nil {
		rd.newModel = app.NewModel
	}
	if rd.openInput == nil {
		rd.openInput = openTUIInput
	}
	if rd.newProgram == nil {
		rd.newProgram = newProgramFn
	}
	if rd.watch == nil {
		rd.watch = config.Watch
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	configPath, err := root.ResolveConfigPath(cmd.String("config"), deps.WorkDir)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}
	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return fmt.Errorf("load config %s: %w", configPath, err)
	}
	cfg.API = root.ResolveAPI(cfg.API, cmd.String("api-url"))
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return fmt.Errorf("no cleaning service configured; run '%s init' or pass --api-url", deps.AppName)
	}

	fresh := runenv.FreshConfigEnabled()
	noRestore := fresh || cmd.Bool("no-restore")

	prefsPath := ""
	userPrefs := prefs.Prefs{}
	if !fresh {
		if path, err := prefs.DefaultPath(); err == nil {
			prefsPath = path
			if loaded, err := prefs.NewLoader(path).Load(); err == nil {
				userPrefs = loaded
			}
		}
	}

	workspace := strings.TrimSpace(cmd.String("workspace"))
	if workspace == "" {
		workspace = strings.TrimSpace(userPrefs.LastWorkspace)
	}
	if workspace == "" {
		workspace = "default"
	}

	var layouts *layoutstore.Store
	if !noRestore {
		layouts = openLayoutStore(ctx)
	}

	var favStore favorites.Store
	if path, err := favorites.DefaultStatePath(); err == nil {
		favStore = favorites.FileStore{Path: path}
	} else if !errors.Is(err, favorites.ErrDisabled) {
		slog.Warn("favorites unavailable", "error", err)
	}

	presetLoader, err := presets.NewLoader()
	if err != nil {
		slog.Warn("presets unavailable", "error", err)
		presetLoader = nil
	} else {
		presetLoader.SetProjectDir(deps.WorkDir)
		if err := presetLoader.LoadAll(); err != nil {
			slog.Warn("load presets", "error", err)
		}
	}

	configEvents, err := rd.watch(ctx, configPath, configWatchDebounce)
	if err != nil {
		slog.Warn("config watch unavailable", "path", configPath, "error", err)
		configEvents = nil
	}

	var client api.Client = root.NewAPIClient(cfg.API, deps.Version)

	model, err := rd.newModel(app.Options{
		Client:       client,
		Workspace:    workspace,
		Config:       cfg,
		ConfigPath:   configPath,
		ConfigEvents: configEvents,
		Preset:       cmd.String("preset"),
		Layouts:      layouts,
		Favorites:    favStore,
		Presets:      presetLoader,
		PrefsPath:    prefsPath,
	})
	if err != nil {
		return fmt.Errorf("initialize dashboard: %w", err)
	}

	input, cleanup, err := rd.openInput()
	if err != nil {
		return fmt.Errorf("cannot initialize TUI input: %w", err)
	}
	defer cleanup()

	motionFilter := mouse.NewMotionFilter()
	p := rd.newProgram(
		model,
		tea.WithAltScreen(),
		tea.WithInput(input),
		tea.WithMouseAllMotion(),
		tea.WithFilter(motionFilter.Filter),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	// Reload before the final save; the session may have written the
	// snap toggle while we were running.
	if prefsPath != "" {
		final, err := prefs.NewLoader(prefsPath).Load()
		if err != nil {
			final = userPrefs
		}
		final.LastWorkspace = workspace
		if err := prefs.Save(prefsPath, final); err != nil {
			slog.Warn("save prefs", "path", prefsPath, "error", err)
		}
	}
	return nil
}

// openLayoutStore loads the snapshot store. A broken store degrades to
// a fresh session instead of blocking launch.
func openLayoutStore(ctx context.Context) *layoutstore.Store {
	dir, err := appdirs.LayoutsDir()
	if err != nil {
		slog.Warn("layout snapshots unavailable", "error", err)
		return nil
	}
	store, err := layoutstore.NewStore(layoutstore.Config{BaseDir: dir})
	if err != nil {
		slog.Warn("layout snapshots unavailable", "dir", dir, "error", err)
		return nil
	}
	if err := store.Load(ctx); err != nil {
		slog.Warn("load layout snapshots", "dir", dir, "error", err)
		return nil
	}
	if err := store.GC(ctx); err != nil {
		slog.Warn("layout snapshot gc", "dir", dir, "error", err)
	}
	return store
}
