// Package layouts implements `scour layouts`, the snapshot management
// commands for saved workspace layouts.
package layouts

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/cli/output"
	"github.com/scourlabs/scour/internal/cli/root"
	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/layoutstore"
	"github.com/scourlabs/scour/internal/presets"
)

const savedAtFormat = "2006-01-02 15:04"

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{Name: "json", Usage: "emit machine-readable output"}
}

// Command builds the `layouts` command tree.
func Command(deps root.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "layouts",
		Usage: "Manage saved workspace layouts",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List saved layouts and available presets",
				Flags: []cli.Flag{jsonFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runList(ctx, cmd, deps)
				},
			},
			{
				Name:      "show",
				Usage:     "Show the saved layout for a workspace",
				ArgsUsage: "WORKSPACE",
				Flags:     []cli.Flag{jsonFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runShow(ctx, cmd, deps)
				},
			},
			{
				Name:      "reset",
				Usage:     "Delete the saved layout so the workspace reopens with its preset",
				ArgsUsage: "WORKSPACE",
				Flags:     []cli.Flag{jsonFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runReset(ctx, cmd, deps)
				},
			},
		},
	}
}

func openStore(ctx context.Context) (*layoutstore.Store, error) {
	dir, err := appdirs.LayoutsDir()
	if err != nil {
		return nil, fmt.Errorf("resolve layouts dir: %w", err)
	}
	store, err := layoutstore.NewStore(layoutstore.Config{BaseDir: dir})
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func loadPresetInfos(workDir string) []presets.Info {
	loader, err := presets.NewLoader()
	if err != nil {
		return nil
	}
	loader.SetProjectDir(workDir)
	if err := loader.LoadAll(); err != nil {
		return nil
	}
	return loader.List()
}

func runList(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	start := time.Now()
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	snaps := store.Snapshots()
	infos := loadPresetInfos(deps.WorkDir)

	if cmd.Bool("json") {
		items := make([]output.LayoutSummary, 0, len(snaps))
		for _, snap := range snaps {
			items = append(items, output.LayoutSummary{
				Workspace: snap.Workspace,
				Panels:    len(snap.Panels),
				SavedAt:   snap.SavedAt,
			})
		}
		presetItems := make([]output.PresetSummary, 0, len(infos))
		for _, info := range infos {
			presetItems = append(presetItems, output.PresetSummary{
				Name:        info.Name,
				Source:      info.Source,
				Description: info.Description,
			})
		}
		meta := output.WithDuration(output.NewMeta("layouts.list", deps.Version), start)
		return output.WriteSuccess(deps.Stdout, meta, output.LayoutList{
			Layouts: items,
			Presets: presetItems,
			Total:   len(items),
		})
	}

	if len(snaps) == 0 {
		if _, err := fmt.Fprintln(deps.Stdout, "No saved layouts."); err != nil {
			return err
		}
	} else {
		w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WORKSPACE\tPANELS\tSAVED")
		fmt.Fprintln(w, "---------\t------\t-----")
		for _, snap := range snaps {
			fmt.Fprintf(w, "%s\t%d\t%s\n", snap.Workspace, len(snap.Panels), snap.SavedAt.UTC().Format(savedAtFormat))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if len(infos) > 0 {
		fmt.Fprintln(deps.Stdout)
		w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRESET\tSOURCE\tDESCRIPTION")
		fmt.Fprintln(w, "------\t------\t-----------")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Source, info.Description)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(deps.Stdout)
	_, err = fmt.Fprintf(deps.Stdout, "Use '%s layouts show <workspace>' to inspect a saved layout\n", identity.CLIName)
	return err
}

func runShow(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	start := time.Now()
	workspace := cmd.Args().First()
	if workspace == "" {
		return cli.Exit("usage: "+identity.CLIName+" layouts show WORKSPACE", 2)
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	snap, ok := store.Snapshot(workspace)
	if !ok {
		return fmt.Errorf("no saved layout for workspace %q", workspace)
	}

	if cmd.Bool("json") {
		detail := output.LayoutDetail{
			Workspace: snap.Workspace,
			SavedAt:   snap.SavedAt,
			Panels:    make([]output.PanelDetail, 0, len(snap.Panels)),
		}
		for _, panel := range snap.Panels {
			detail.Panels = append(detail.Panels, output.PanelDetail{
				ID:       panel.ID,
				Title:    panel.Title,
				Kind:     panel.Kind,
				Position: panel.Position,
				Frac:     panel.Frac,
				Float:    output.Rect{X: panel.Float.X, Y: panel.Float.Y, W: panel.Float.W, H: panel.Float.H},
				Pinned:   panel.Pinned,
			})
		}
		meta := output.WithDuration(output.NewMeta("layouts.show", deps.Version), start)
		return output.WriteSuccess(deps.Stdout, meta, detail)
	}

	fmt.Fprintf(deps.Stdout, "Workspace %s (saved %s)\n\n", snap.Workspace, snap.SavedAt.UTC().Format(savedAtFormat))
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tKIND\tPOSITION\tFRAME\tPINNED")
	fmt.Fprintln(w, "-----\t----\t--------\t-----\t------")
	for _, panel := range snap.Panels {
		frame := fmt.Sprintf("%.2f", panel.Frac)
		if panel.Position == dock.PositionFloat.String() {
			frame = fmt.Sprintf("%dx%d@%d,%d", panel.Float.W, panel.Float.H, panel.Float.X, panel.Float.Y)
		}
		pinned := ""
		if panel.Pinned {
			pinned = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", panel.ID, panel.Kind, panel.Position, frame, pinned)
	}
	return w.Flush()
}

func runReset(ctx context.Context, cmd *cli.Command, deps root.Dependencies) error {
	start := time.Now()
	workspace := cmd.Args().First()
	if workspace == "" {
		return cli.Exit("usage: "+identity.CLIName+" layouts reset WORKSPACE", 2)
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	if _, ok := store.Snapshot(workspace); !ok {
		return fmt.Errorf("no saved layout for workspace %q", workspace)
	}
	store.Delete(workspace)

	if cmd.Bool("json") {
		meta := output.WithDuration(output.NewMeta("layouts.reset", deps.Version), start)
		return output.WriteSuccess(deps.Stdout, meta, output.ActionResult{
			Action:  "layouts.reset",
			Status:  "ok",
			Message: fmt.Sprintf("layout for workspace %q deleted", workspace),
		})
	}
	_, err = fmt.Fprintf(deps.Stdout, "Layout for workspace %q deleted. The next launch starts from its preset.\n", workspace)
	return err
}
