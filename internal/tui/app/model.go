package app

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scourlabs/scour/internal/api"
	"github.com/scourlabs/scour/internal/config"
	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/favorites"
	"github.com/scourlabs/scour/internal/layoutstore"
	"github.com/scourlabs/scour/internal/prefs"
	"github.com/scourlabs/scour/internal/presets"
	"github.com/scourlabs/scour/internal/tui/breakpoints"
	"github.com/scourlabs/scour/internal/tui/mouse"
	"github.com/scourlabs/scour/internal/tui/theme"
)

// Options wires the dashboard model to everything the CLI resolved
// before launch. Client and Workspace are required; the rest degrade
// to in-memory defaults when nil so tests can build small models.
type Options struct {
	Client       api.Client
	Workspace    string
	Config       config.Config
	ConfigPath   string
	ConfigEvents <-chan struct{}
	Preset       string
	Layouts      *layoutstore.Store
	Favorites    favorites.Store
	Presets      *presets.Loader
	PrefsPath    string
}

// Model is the bubbletea model for the panel workbench.
type Model struct {
	client  api.Client
	store   *dock.Store
	drag    *dock.Controller
	layouts *layoutstore.Store
	favs    favorites.Store
	presets *presets.Loader

	cfg          config.Config
	cfgLoader    *config.Loader
	configEvents <-chan struct{}
	prefsPath    string
	userPrefs    prefs.Prefs

	workspace string

	state  ViewState
	width  int
	height int
	tier   breakpoints.Tier

	keys     *workbenchKeyMap
	helpView help.Model
	spin     spinner.Model

	schema      api.Schema
	issues      []api.Issue
	samples     map[string]api.SampleSet
	favState    favorites.State
	meta        api.Meta
	issueFilter api.IssueFilter

	focusID       string
	selectedTable string
	expanded      map[string]bool
	schemaCursor  int
	issueCursor   int
	sampleRow     int

	loading map[string]bool

	snapEnabled  bool
	overlayStyle string

	clicks  mouse.Handler
	pending pendingDrag

	palette paletteState

	toast toastMessage

	saveSeq     uint64
	layoutDirty bool
	unsubscribe func()
}

// NewModel builds the dashboard model. The saved layout for the
// workspace wins over the preset; the preset seeds fresh workspaces.
func NewModel(opts Options) (*Model, error) {
	if opts.Client == nil {
		return nil, errors.New("app: api client is required")
	}
	workspace := strings.TrimSpace(opts.Workspace)
	if workspace == "" {
		workspace = "default"
	}
	theme.Apply(opts.Config.UI.Theme)

	keys, err := buildWorkbenchKeyMap(opts.Config.Keymap)
	if err != nil {
		return nil, err
	}

	m := &Model{
		client:       opts.Client,
		layouts:      opts.Layouts,
		favs:         opts.Favorites,
		presets:      opts.Presets,
		cfg:          opts.Config,
		configEvents: opts.ConfigEvents,
		prefsPath:    opts.PrefsPath,
		workspace:    workspace,
		state:        StateWorkspace,
		tier:         breakpoints.TierNormal,
		keys:         keys,
		samples:      make(map[string]api.SampleSet),
		expanded:     make(map[string]bool),
		loading:      make(map[string]bool),
	}
	if opts.ConfigPath != "" {
		m.cfgLoader = config.NewLoader(opts.ConfigPath)
	}

	if m.prefsPath != "" {
		loaded, err := prefs.NewLoader(m.prefsPath).Load()
		if err != nil {
			slog.Warn("prefs unreadable, using defaults", "path", m.prefsPath, "error", err)
		} else {
			m.userPrefs = loaded
		}
	}
	m.snapEnabled = m.cfg.Dock.Snap()
	if m.userPrefs.SnapEnabled != nil {
		m.snapEnabled = *m.userPrefs.SnapEnabled
	}
	m.overlayStyle = m.userPrefs.Overlay()

	m.store = dock.NewStore()
	m.drag = dock.NewController(m.store, m.cfg.Dock.Threshold)
	if !m.snapEnabled {
		m.drag.SetThreshold(0)
	}

	if !m.restoreSavedLayout() {
		m.applyPreset(opts.Preset)
	}
	m.unsubscribe = m.store.Subscribe(func(dock.Event) {
		m.layoutDirty = true
	})
	m.focusFirstPanel()

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	m.helpView = help.New()
	m.helpView.Styles.ShortKey = theme.ShortcutKey
	m.helpView.Styles.ShortDesc = theme.ShortcutDesc
	m.helpView.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.TextDim)
	m.helpView.Styles.FullKey = theme.ShortcutKey
	m.helpView.Styles.FullDesc = theme.ShortcutDesc
	m.helpView.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.TextDim)

	m.palette = newPaletteState()

	return m, nil
}

// restoreSavedLayout seeds the store from the persisted workspace
// snapshot. Returns false when nothing usable was saved.
func (m *Model) restoreSavedLayout() bool {
	if m.layouts == nil {
		return false
	}
	snap, ok := m.layouts.Snapshot(m.workspace)
	if !ok {
		return false
	}
	layout, dropped := snap.ToLayout()
	for _, id := range dropped {
		slog.Warn("dropping invalid panel from saved layout", "workspace", m.workspace, "panel", id)
	}
	if len(layout.Panels) == 0 {
		return false
	}
	m.store.Restore(layout)
	return true
}

// applyPreset replaces the panel set with a named preset, falling
// back to the built-in default when the name is unknown.
func (m *Model) applyPreset(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = presets.DefaultPresetName
	}
	preset := m.lookupPreset(name)
	if preset == nil && name != presets.DefaultPresetName {
		slog.Warn("preset not found, using default", "preset", name)
		preset = m.lookupPreset(presets.DefaultPresetName)
	}
	if preset == nil {
		return
	}
	layout, dropped := preset.ToLayout()
	for _, id := range dropped {
		slog.Warn("dropping invalid panel from preset", "preset", preset.Name, "panel", id)
	}
	m.store.Restore(layout)
	m.clampFloatsToViewport()
	m.focusFirstPanel()
}

func (m *Model) lookupPreset(name string) *presets.Preset {
	if m.presets != nil {
		if p, _, err := m.presets.Get(name); err == nil {
			return p
		}
	}
	p, err := presets.GetBuiltin(name)
	if err != nil {
		return nil
	}
	return p
}

func (m *Model) focusFirstPanel() {
	ring := m.focusRing()
	if len(ring) == 0 {
		m.focusID = ""
		return
	}
	for _, id := range ring {
		if id == m.focusID {
			return
		}
	}
	m.focusID = ring[0]
}

// focusRing lists panel IDs in traversal order: docked left, right,
// bottom, then floats from back to front.
func (m *Model) focusRing() []string {
	ring := make([]string, 0, 4)
	for _, pos := range []dock.Position{dock.PositionLeft, dock.PositionRight, dock.PositionBottom} {
		if p, ok := m.store.Docked(pos); ok {
			ring = append(ring, p.ID)
		}
	}
	for _, p := range m.store.Floating() {
		ring = append(ring, p.ID)
	}
	return ring
}

func (m *Model) focusedPanel() (dock.Panel, bool) {
	if m.focusID == "" {
		return dock.Panel{}, false
	}
	return m.store.Get(m.focusID)
}

// workspaceViewport is the drag and layout coordinate space: the
// terminal minus the header and status rows.
func (m *Model) workspaceViewport() dock.Viewport {
	h := m.height - headerHeight - statusHeight
	if h < 0 {
		h = 0
	}
	return dock.Viewport{Width: m.width, Height: h}
}

func (m *Model) effectiveThreshold() int {
	if !m.snapEnabled {
		return 0
	}
	return m.cfg.Dock.Threshold
}

// clampFloatsToViewport pulls floating frames back inside the
// viewport after restores and terminal shrinks.
func (m *Model) clampFloatsToViewport() {
	vp := m.workspaceViewport()
	if vp.Empty() {
		return
	}
	for _, p := range m.store.Floating() {
		frame := p.Float
		if frame.Empty() {
			continue
		}
		if frame.W > vp.Width {
			frame.W = vp.Width
		}
		if frame.H > vp.Height {
			frame.H = vp.Height
		}
		if frame.X+frame.W > vp.Width {
			frame.X = vp.Width - frame.W
		}
		if frame.Y+frame.H > vp.Height {
			frame.Y = vp.Height - frame.H
		}
		if frame.X < 0 {
			frame.X = 0
		}
		if frame.Y < 0 {
			frame.Y = 0
		}
		if frame == p.Float {
			continue
		}
		if err := m.store.Resize(p.ID, dock.Size{Frame: frame}); err != nil {
			slog.Warn("clamping float failed", "panel", p.ID, "error", err)
		}
	}
}

func (m *Model) loadingAny() bool {
	return len(m.loading) > 0
}

func (m *Model) beginLoading(key string) bool {
	if m.loading[key] {
		return false
	}
	m.loading[key] = true
	return true
}

func (m *Model) endLoading(key string) {
	delete(m.loading, key)
}

// Init starts the initial data fetches and the config watch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.fetchSchemaCmd(),
		m.fetchIssuesCmd(),
		m.fetchMetaCmd(),
		m.loadFavoritesCmd(),
		m.spin.Tick,
	}
	if m.configEvents != nil {
		cmds = append(cmds, m.waitConfigEventCmd())
	}
	return tea.Batch(cmds...)
}
