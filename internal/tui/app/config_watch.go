package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scourlabs/scour/internal/tui/breakpoints"
	"github.com/scourlabs/scour/internal/tui/theme"
)

// waitConfigEventCmd blocks on the watcher channel until the config
// file changes. The handler re-arms it after every event.
func (m *Model) waitConfigEventCmd() tea.Cmd {
	ch := m.configEvents
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		_, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadMsg{}
	}
}

func (m *Model) handleConfigReload() tea.Cmd {
	cmds := []tea.Cmd{m.waitConfigEventCmd()}
	if m.cfgLoader != nil {
		loader := m.cfgLoader
		cmds = append(cmds, func() tea.Msg {
			cfg, err := loader.Load()
			return configAppliedMsg{Config: cfg, Err: err}
		})
	}
	return tea.Batch(cmds...)
}

// handleConfigApplied swaps in a freshly loaded config. A config that
// fails to resolve leaves the running one untouched.
func (m *Model) handleConfigApplied(msg configAppliedMsg) tea.Cmd {
	if msg.Err != nil {
		m.setToast("config reload failed: "+msg.Err.Error(), toastError)
		return nil
	}
	keys, err := buildWorkbenchKeyMap(msg.Config.Keymap)
	if err != nil {
		m.setToast("config reload: "+err.Error(), toastError)
		return nil
	}
	m.cfg = msg.Config
	m.keys = keys
	theme.Apply(m.cfg.UI.Theme)
	if m.userPrefs.SnapEnabled == nil {
		m.snapEnabled = m.cfg.Dock.Snap()
	}
	m.drag.SetThreshold(m.effectiveThreshold())
	m.tier = breakpoints.ForWidth(m.width, m.cfg.UI.CompactWidth)
	m.setToast("config reloaded", toastSuccess)
	return nil
}
