package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/layoutstore"
)

// layoutSaveDebounce batches the mutation bursts a drag produces into
// a single disk write.
const layoutSaveDebounce = 500 * time.Millisecond

const layoutSaveTimeout = 5 * time.Second

func (m *Model) scheduleLayoutSaveCmd(seq uint64) tea.Cmd {
	if m.layouts == nil {
		return nil
	}
	return tea.Tick(layoutSaveDebounce, func(time.Time) tea.Msg {
		return layoutSaveTickMsg{Seq: seq}
	})
}

func (m *Model) handleLayoutSaveTick(msg layoutSaveTickMsg) tea.Cmd {
	// A newer mutation rescheduled the save; let its tick win.
	if msg.Seq != m.saveSeq {
		return nil
	}
	return m.saveLayoutCmd()
}

// saveLayoutCmd snapshots the store on the update goroutine and does
// the disk write off it.
func (m *Model) saveLayoutCmd() tea.Cmd {
	if m.layouts == nil {
		return nil
	}
	snap := layoutstore.FromLayout(m.workspace, m.store.Snapshot())
	store := m.layouts
	workspace := m.workspace
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), layoutSaveTimeout)
		defer cancel()
		err := store.Save(ctx, snap)
		return layoutSavedMsg{Workspace: workspace, Err: err}
	}
}
