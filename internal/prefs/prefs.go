// Package prefs persists small user preferences the dashboard writes
// back at runtime, separate from the hand-edited config.
package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/scourlabs/scour/internal/appdirs"
	"github.com/scourlabs/scour/internal/atomicfile"
	"github.com/scourlabs/scour/internal/identity"
)

const (
	OverlayStyleBand    = "band"
	OverlayStyleOutline = "outline"
)

// Prefs represents prefs.toml in the Scour config directory.
type Prefs struct {
	SnapEnabled   *bool  `toml:"snap_enabled,omitempty"`
	LastWorkspace string `toml:"last_workspace,omitempty"`
	OverlayStyle  string `toml:"overlay_style,omitempty"`
}

// Snap reports whether edge snapping is enabled. Defaults to true.
func (p Prefs) Snap() bool {
	if p.SnapEnabled == nil {
		return true
	}
	return *p.SnapEnabled
}

// Overlay returns the normalized overlay style.
func (p Prefs) Overlay() string {
	switch strings.ToLower(strings.TrimSpace(p.OverlayStyle)) {
	case OverlayStyleOutline:
		return OverlayStyleOutline
	default:
		return OverlayStyleBand
	}
}

// DefaultPath returns the prefs path without creating directories.
func DefaultPath() (string, error) {
	dir, err := appdirs.ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalPrefsFile), nil
}

// Loader caches prefs and reloads when the file changes.
type Loader struct {
	path     string
	lastRead fileState
	cached   Prefs
}

type fileState struct {
	modTime time.Time
	size    int64
}

// NewLoader creates a prefs loader for the provided path.
func NewLoader(path string) *Loader {
	return &Loader{path: strings.TrimSpace(path)}
}

// Load returns the cached prefs, reloading if the file changed.
func (l *Loader) Load() (Prefs, error) {
	if l == nil {
		return Prefs{}, errors.New("nil loader")
	}
	path := strings.TrimSpace(l.path)
	if path == "" {
		return Prefs{}, errors.New("empty prefs path")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.cached = Prefs{}
			l.lastRead = fileState{}
			return l.cached, nil
		}
		return Prefs{}, err
	}
	state := fileState{modTime: info.ModTime(), size: info.Size()}
	if state == l.lastRead {
		return l.cached, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Prefs{}, err
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}, err
	}
	l.cached = p
	l.lastRead = state
	return p, nil
}

// Save writes prefs to disk atomically.
func Save(path string, p Prefs) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("empty prefs path")
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return errors.New("prefs path missing directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return atomicfile.Save(path, data, 0o600)
}
