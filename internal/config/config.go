// Package config loads Scour's YAML configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/logging"
)

const (
	DefaultDockThreshold  = 8
	DefaultCompactWidth   = 80
	DefaultTheme          = "dark"
	defaultTimeoutSeconds = 10
)

// Config represents config.yml in the Scour config directory.
type Config struct {
	API     APIConfig      `yaml:"api,omitempty"`
	Dock    DockConfig     `yaml:"dock,omitempty"`
	UI      UIConfig       `yaml:"ui,omitempty"`
	Keymap  KeymapConfig   `yaml:"keymap,omitempty"`
	Logging logging.Config `yaml:"logging,omitempty"`
}

// APIConfig configures the cleaning-service connection.
type APIConfig struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	Token          string `yaml:"token,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	seconds := c.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// DockConfig configures edge docking.
type DockConfig struct {
	Threshold   int   `yaml:"threshold,omitempty"`
	SnapEnabled *bool `yaml:"snap_enabled,omitempty"`
}

// Snap reports whether edge snapping is enabled. Defaults to true.
func (c DockConfig) Snap() bool {
	if c.SnapEnabled == nil {
		return true
	}
	return *c.SnapEnabled
}

// UIConfig configures dashboard appearance.
type UIConfig struct {
	Theme        string `yaml:"theme,omitempty"`
	CompactWidth int    `yaml:"compact_width,omitempty"`
}

// KeymapConfig overrides dashboard key bindings. Empty lists keep the
// built-in defaults.
type KeymapConfig struct {
	FocusNext      []string `yaml:"focus_next,omitempty"`
	FocusPrev      []string `yaml:"focus_prev,omitempty"`
	DockLeft       []string `yaml:"dock_left,omitempty"`
	DockRight      []string `yaml:"dock_right,omitempty"`
	DockBottom     []string `yaml:"dock_bottom,omitempty"`
	DockCycle      []string `yaml:"dock_cycle,omitempty"`
	FloatPanel     []string `yaml:"float_panel,omitempty"`
	TogglePin      []string `yaml:"toggle_pin,omitempty"`
	ToggleSnap     []string `yaml:"toggle_snap,omitempty"`
	Favorite       []string `yaml:"favorite,omitempty"`
	CopyRow        []string `yaml:"copy_row,omitempty"`
	ExportReport   []string `yaml:"export_report,omitempty"`
	CommandPalette []string `yaml:"command_palette,omitempty"`
	Refresh        []string `yaml:"refresh,omitempty"`
	ResetLayout    []string `yaml:"reset_layout,omitempty"`
	Help           []string `yaml:"help,omitempty"`
	Quit           []string `yaml:"quit,omitempty"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		API: APIConfig{
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Dock: DockConfig{
			Threshold: DefaultDockThreshold,
		},
		UI: UIConfig{
			Theme:        DefaultTheme,
			CompactWidth: DefaultCompactWidth,
		},
	}
}

// DefaultPath returns the global config path without creating directories.
func DefaultPath() (string, error) {
	dir, err := appdirs.ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalConfigFile), nil
}

// FindProjectConfig returns the project-level config file in dir, if any.
// .scour.yml wins over .scour.yaml.
func FindProjectConfig(dir string) (string, bool) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", false
	}
	for _, name := range []string{identity.ProjectConfigFileYML, identity.ProjectConfigFileYAML} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load reads a config file. A missing file yields defaults.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Defaults(), errors.New("empty config path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Defaults(), err
	}
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

// Merge overlays non-zero fields of override onto base.
func Merge(base, override Config) Config {
	out := base
	if v := strings.TrimSpace(override.API.BaseURL); v != "" {
		out.API.BaseURL = v
	}
	if v := strings.TrimSpace(override.API.Token); v != "" {
		out.API.Token = v
	}
	if override.API.TimeoutSeconds > 0 {
		out.API.TimeoutSeconds = override.API.TimeoutSeconds
	}
	if override.Dock.Threshold > 0 {
		out.Dock.Threshold = override.Dock.Threshold
	}
	if override.Dock.SnapEnabled != nil {
		out.Dock.SnapEnabled = override.Dock.SnapEnabled
	}
	if v := strings.TrimSpace(override.UI.Theme); v != "" {
		out.UI.Theme = v
	}
	if override.UI.CompactWidth > 0 {
		out.UI.CompactWidth = override.UI.CompactWidth
	}
	out.Keymap = mergeKeymap(out.Keymap, override.Keymap)
	out.Logging = logging.MergeConfig(out.Logging, override.Logging)
	return out
}

func mergeKeymap(base, override KeymapConfig) KeymapConfig {
	pick := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	out := base
	pick(&out.FocusNext, override.FocusNext)
	pick(&out.FocusPrev, override.FocusPrev)
	pick(&out.DockLeft, override.DockLeft)
	pick(&out.DockRight, override.DockRight)
	pick(&out.DockBottom, override.DockBottom)
	pick(&out.DockCycle, override.DockCycle)
	pick(&out.FloatPanel, override.FloatPanel)
	pick(&out.TogglePin, override.TogglePin)
	pick(&out.ToggleSnap, override.ToggleSnap)
	pick(&out.Favorite, override.Favorite)
	pick(&out.CopyRow, override.CopyRow)
	pick(&out.ExportReport, override.ExportReport)
	pick(&out.CommandPalette, override.CommandPalette)
	pick(&out.Refresh, override.Refresh)
	pick(&out.ResetLayout, override.ResetLayout)
	pick(&out.Help, override.Help)
	pick(&out.Quit, override.Quit)
	return out
}

// Loader caches config values and reloads when the file changes.
type Loader struct {
	path     string
	lastRead fileState
	cached   Config
}

type fileState struct {
	modTime time.Time
	size    int64
}

// NewLoader creates a config loader for the provided path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:   strings.TrimSpace(path),
		cached: Defaults(),
	}
}

// Path returns the loader's config path.
func (l *Loader) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Load returns the cached config, reloading if the file changed.
func (l *Loader) Load() (Config, error) {
	if l == nil {
		return Defaults(), errors.New("nil loader")
	}
	path := strings.TrimSpace(l.path)
	if path == "" {
		return Defaults(), errors.New("empty config path")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.cached = Defaults()
			l.lastRead = fileState{}
			return l.cached, nil
		}
		return Defaults(), err
	}
	state := fileState{modTime: info.ModTime(), size: info.Size()}
	if state == l.lastRead {
		return l.cached, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Defaults(), err
	}
	l.cached = cfg
	l.lastRead = state
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Dock.Threshold <= 0 {
		cfg.Dock.Threshold = DefaultDockThreshold
	}
	if strings.TrimSpace(cfg.UI.Theme) == "" {
		cfg.UI.Theme = DefaultTheme
	}
	if cfg.UI.CompactWidth <= 0 {
		cfg.UI.CompactWidth = DefaultCompactWidth
	}
}
