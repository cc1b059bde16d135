package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/favorites"
	"github.com/scourlabs/scour/internal/limits"
	"github.com/scourlabs/scour/internal/logging"
	"github.com/scourlabs/scour/internal/tui/breakpoints"
	"github.com/scourlabs/scour/internal/version"
)

// warnFetchFailed logs a fetch failure with credentials scrubbed from
// the error. Refresh and reconnect attempts repeat failures quickly, so
// the log entry is rate limited per fetch kind.
func warnFetchFailed(key, what string, err error) {
	logging.LogEvery(
		context.Background(),
		"tui.fetch."+key,
		10*time.Second,
		slog.LevelWarn,
		what+" fetch failed",
		slog.String("err", logging.SanitizeError(err)),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, handled := m.handleUpdateMsg(msg)
	if !handled {
		cmd = nil
	}
	// Store mutations mark the layout dirty through the subscription;
	// convert that into one debounced save per mutation burst.
	if m.layoutDirty {
		m.layoutDirty = false
		m.saveSeq++
		cmd = tea.Batch(cmd, m.scheduleLayoutSaveCmd(m.saveSeq))
	}
	return m, cmd
}

func (m *Model) handleUpdateMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), true
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case spinner.TickMsg:
		if !m.loadingAny() {
			return nil, true
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd, true
	case schemaLoadedMsg:
		return m.handleSchemaLoaded(msg), true
	case issuesLoadedMsg:
		return m.handleIssuesLoaded(msg), true
	case samplesLoadedMsg:
		return m.handleSamplesLoaded(msg), true
	case metaLoadedMsg:
		return m.handleMetaLoaded(msg), true
	case favoritesLoadedMsg:
		return m.handleFavoritesLoaded(msg), true
	case favoriteToggledMsg:
		return m.handleFavoriteToggled(msg), true
	case reportSavedMsg:
		if msg.Err != nil {
			m.setToast("export failed: "+msg.Err.Error(), toastError)
			return nil, true
		}
		m.setToast("report saved to "+msg.Path, toastSuccess)
		return nil, true
	case rowCopiedMsg:
		if msg.Err != nil {
			m.setToast("copy failed: "+msg.Err.Error(), toastError)
			return nil, true
		}
		m.setToast("row copied to clipboard", toastSuccess)
		return nil, true
	case layoutSaveTickMsg:
		return m.handleLayoutSaveTick(msg), true
	case layoutSavedMsg:
		if msg.Err != nil {
			// Every mutation burst retries the save, so a persistent
			// disk problem would otherwise flood the log.
			logging.LogEvery(
				context.Background(),
				"tui.layout.save",
				30*time.Second,
				slog.LevelWarn,
				"layout save failed",
				slog.String("workspace", msg.Workspace),
				slog.Any("err", msg.Err),
			)
			m.setToast("layout save failed: "+msg.Err.Error(), toastError)
		}
		return nil, true
	case configReloadMsg:
		return m.handleConfigReload(), true
	case configAppliedMsg:
		return m.handleConfigApplied(msg), true
	case ErrorMsg:
		m.setToast(msg.Error(), toastError)
		return nil, true
	case SuccessMsg:
		m.setToast(msg.Message, toastSuccess)
		return nil, true
	case InfoMsg:
		m.setToast(msg.Message, toastInfo)
		return nil, true
	case WarningMsg:
		m.setToast(msg.Message, toastWarning)
		return nil, true
	default:
		return nil, false
	}
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	w, h := limits.ClampViewport(msg.Width, msg.Height)
	m.width = w
	m.height = h
	m.tier = breakpoints.ForWidth(w, m.cfg.UI.CompactWidth)
	m.helpView.Width = w
	m.drag.SetViewport(m.workspaceViewport())
	m.clampFloatsToViewport()
	return nil
}

func (m *Model) handleSchemaLoaded(msg schemaLoadedMsg) tea.Cmd {
	m.endLoading("schema")
	if msg.Err != nil {
		warnFetchFailed("schema", "schema", msg.Err)
		m.setToast("load schema: "+msg.Err.Error(), toastError)
		return nil
	}
	m.schema = msg.Schema
	if m.schemaCursor >= len(m.schemaRows()) {
		m.schemaCursor = 0
	}
	if m.selectedTable == "" && len(m.schema.Tables) > 0 {
		m.selectedTable = m.schema.Tables[0].Name
		m.expanded[m.selectedTable] = true
		return tea.Batch(m.fetchSamplesCmd(m.selectedTable), m.spin.Tick)
	}
	return nil
}

func (m *Model) handleIssuesLoaded(msg issuesLoadedMsg) tea.Cmd {
	m.endLoading("issues")
	if msg.Err != nil {
		warnFetchFailed("issues", "issues", msg.Err)
		m.setToast("load issues: "+msg.Err.Error(), toastError)
		return nil
	}
	m.issues = applyFavorites(msg.Issues, m.favState)
	if m.issueCursor >= len(m.issues) {
		m.issueCursor = 0
	}
	return nil
}

func (m *Model) handleSamplesLoaded(msg samplesLoadedMsg) tea.Cmd {
	m.endLoading("samples:" + msg.Table)
	if msg.Err != nil {
		warnFetchFailed("samples", "samples", msg.Err)
		m.setToast("load samples for "+msg.Table+": "+msg.Err.Error(), toastError)
		return nil
	}
	m.samples[msg.Table] = msg.Set
	if msg.Table == m.selectedTable && m.sampleRow >= len(msg.Set.Rows) {
		m.sampleRow = 0
	}
	return nil
}

func (m *Model) handleMetaLoaded(msg metaLoadedMsg) tea.Cmd {
	m.endLoading("meta")
	if msg.Err != nil {
		warnFetchFailed("meta", "service meta", msg.Err)
		m.setToast("backend unreachable: "+msg.Err.Error(), toastWarning)
		return nil
	}
	m.meta = msg.Meta
	if err := version.CheckService(msg.Meta.Version); err != nil {
		m.setToast(err.Error(), toastWarning)
	}
	return nil
}

func (m *Model) handleFavoritesLoaded(msg favoritesLoadedMsg) tea.Cmd {
	m.endLoading("favorites")
	if msg.Err != nil {
		if !errors.Is(msg.Err, favorites.ErrDisabled) {
			m.setToast("favorites unavailable: "+msg.Err.Error(), toastWarning)
		}
		return nil
	}
	m.favState = msg.State
	m.issues = applyFavorites(m.issues, m.favState)
	return nil
}

func (m *Model) handleFavoriteToggled(msg favoriteToggledMsg) tea.Cmd {
	if msg.Err != nil {
		m.setToast("favorite sync failed: "+msg.Err.Error(), toastWarning)
		return nil
	}
	for i := range m.issues {
		if m.issues[i].ID == msg.Issue.ID {
			m.issues[i] = msg.Issue
			if m.favState.Has(msg.Issue.ID) {
				m.issues[i].Favorite = true
			}
			break
		}
	}
	return nil
}
