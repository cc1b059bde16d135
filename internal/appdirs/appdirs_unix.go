//go:build !windows

package appdirs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/scourlabs/scour/internal/identity"
	"github.com/scourlabs/scour/internal/runenv"

	"log/slog"
)

var dirPermsWarnOnce sync.Once

// ConfigDir returns the directory holding config.yml, prefs.toml and
// user presets, creating it with 0700 when missing.
func ConfigDir() (string, error) {
	dir, err := ConfigDirPath()
	if err != nil {
		return "", err
	}
	return ensureDir(dir, runenv.ConfigDir() != "")
}

// ConfigDirPath resolves the config directory without creating it.
func ConfigDirPath() (string, error) {
	if override := runenv.ConfigDir(); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// DataDir returns the directory used for mutable state (layout
// snapshots, favorites, logs), creating it with 0700 when missing.
func DataDir() (string, error) {
	dir, err := DataDirPath()
	if err != nil {
		return "", err
	}
	return ensureDir(dir, runenv.DataDir() != "")
}

// DataDirPath resolves the data directory without creating it.
func DataDirPath() (string, error) {
	if override := runenv.DataDir(); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug, "state"), nil
}

// LogsDir returns the log directory under the data dir.
func LogsDir() (string, error) {
	data, err := DataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(data, "logs"), false)
}

// LayoutsDir returns the layout snapshot directory under the data dir.
func LayoutsDir() (string, error) {
	data, err := DataDir()
	if err != nil {
		return "", err
	}
	return ensureDir(filepath.Join(data, identity.LayoutsDir), false)
}

func ensureDir(dir string, isOverride bool) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("state dir is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat state dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create state dir: %w", err)
		}
		return dir, nil
	}
	if !info.IsDir() {
		return "", fmt.Errorf("state dir %q is not a directory", dir)
	}
	mode := info.Mode().Perm()
	if mode&0o077 == 0 {
		return dir, nil
	}
	if isOverride {
		dirPermsWarnOnce.Do(func() {
			slog.Warn("state dir is group/world accessible; consider chmod 0700", "path", dir, "mode", mode.String())
		})
		return dir, nil
	}
	if ownedByCurrentUser(info) {
		if err := os.Chmod(dir, 0o700); err != nil {
			return "", fmt.Errorf("chmod state dir: %w", err)
		}
		return dir, nil
	}
	dirPermsWarnOnce.Do(func() {
		slog.Warn("state dir is not owned by current user; permissions unchanged", "path", dir, "mode", mode.String())
	})
	return dir, nil
}

func ownedByCurrentUser(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}
	return stat.Uid == uint32(os.Getuid())
}
