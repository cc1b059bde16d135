package app

import (
	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/favorites"
)

// ViewState identifies which input layer owns the keyboard.
type ViewState int

const (
	// StateWorkspace is the normal panel workbench.
	StateWorkspace ViewState = iota
	// StateCommandPalette routes keys to the palette input.
	StateCommandPalette
	// StateHelp shows the full keybinding reference.
	StateHelp
)

func (s ViewState) String() string {
	switch s {
	case StateWorkspace:
		return "workspace"
	case StateCommandPalette:
		return "command-palette"
	case StateHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Messages produced by background commands. Each carries its own Err
// so one failed fetch never blocks the rest of the dashboard.

type schemaLoadedMsg struct {
	Schema api.Schema
	Err    error
}

type issuesLoadedMsg struct {
	Issues []api.Issue
	Err    error
}

type samplesLoadedMsg struct {
	Table string
	Set   api.SampleSet
	Err   error
}

type metaLoadedMsg struct {
	Meta api.Meta
	Err  error
}

type favoriteToggledMsg struct {
	Issue api.Issue
	Err   error
}

type favoritesLoadedMsg struct {
	State favorites.State
	Err   error
}

type reportSavedMsg struct {
	Path string
	Err  error
}

type rowCopiedMsg struct {
	Err error
}

// layoutSaveTickMsg fires after the save debounce window. Seq guards
// against stale ticks from earlier mutations.
type layoutSaveTickMsg struct {
	Seq uint64
}

type layoutSavedMsg struct {
	Workspace string
	Err       error
}

// configReloadMsg arrives when the config file changes on disk.
type configReloadMsg struct{}

type configAppliedMsg struct {
	Config config.Config
	Err    error
}
