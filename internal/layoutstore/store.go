package layoutstore

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/scourlabs/scour/internal/atomicfile"
)

const (
	quarantineDirName = "quarantine"
	snapshotExt       = ".json.gz"

	DefaultMaxDiskMB = 16
	DefaultTTL       = 90 * 24 * time.Hour
)

// Config configures layout snapshot persistence.
type Config struct {
	BaseDir      string
	MaxDiskBytes int64
	TTL          time.Duration
}

func (c Config) Normalized() Config {
	cfg := c
	if cfg.MaxDiskBytes <= 0 {
		cfg.MaxDiskBytes = int64(DefaultMaxDiskMB) * 1024 * 1024
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return cfg
}

// Store persists one layout snapshot per workspace. Corrupt or
// schema-invalid files are quarantined and treated as absent, so a
// bad snapshot never blocks startup.
type Store struct {
	baseDir string
	cfg     Config

	mu    sync.RWMutex
	snaps map[string]Snapshot
}

// NewStore creates a snapshot store rooted at cfg.BaseDir.
func NewStore(cfg Config) (*Store, error) {
	cfg = cfg.Normalized()
	base := strings.TrimSpace(cfg.BaseDir)
	if base == "" {
		return nil, errors.New("layoutstore: base dir is required")
	}
	base = filepath.Clean(base)
	if err := os.MkdirAll(base, 0o700); err != nil {
		return nil, fmt.Errorf("layoutstore: create layout dir: %w", err)
	}
	return &Store{
		baseDir: base,
		cfg:     cfg,
		snaps:   make(map[string]Snapshot),
	}, nil
}

// Load reads persisted snapshots from disk, quarantining any file
// that fails to decode or validate.
func (s *Store) Load(ctx context.Context) error {
	if s == nil {
		return nil
	}
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("layoutstore: read layout dir: %w", err)
	}
	loaded := make(map[string]Snapshot)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		path := filepath.Join(s.baseDir, name)
		snap, err := s.loadSnapshot(path)
		if err != nil {
			s.quarantine(path)
			continue
		}
		if snap.Workspace == "" {
			s.quarantine(path)
			continue
		}
		loaded[snap.Workspace] = snap
	}
	s.mu.Lock()
	s.snaps = loaded
	s.mu.Unlock()
	return nil
}

// Snapshot returns the persisted snapshot for a workspace.
func (s *Store) Snapshot(workspace string) (Snapshot, bool) {
	if s == nil {
		return Snapshot{}, false
	}
	workspace = strings.TrimSpace(workspace)
	if workspace == "" {
		return Snapshot{}, false
	}
	s.mu.RLock()
	snap, ok := s.snaps[workspace]
	s.mu.RUnlock()
	return snap, ok
}

// Snapshots returns every persisted snapshot sorted by workspace.
func (s *Store) Snapshots() []Snapshot {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	out := make([]Snapshot, 0, len(s.snaps))
	for _, snap := range s.snaps {
		out = append(out, snap)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].Workspace < out[j].Workspace
	})
	return out
}

// Save persists a workspace snapshot to disk.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	if s == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	workspace, err := SanitizeWorkspace(snap.Workspace)
	if err != nil {
		return err
	}
	snap.Workspace = workspace
	snap.SchemaVersion = CurrentSchemaVersion
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}
	data, err := encodeSnapshot(&snap)
	if err != nil {
		return err
	}
	path := filepath.Join(s.baseDir, workspace+snapshotExt)
	if err := atomicfile.Save(path, data, 0o600); err != nil {
		return err
	}
	s.mu.Lock()
	s.snaps[workspace] = snap
	s.mu.Unlock()
	return nil
}

// Delete removes a workspace snapshot from disk.
func (s *Store) Delete(workspace string) {
	if s == nil {
		return
	}
	workspace = strings.TrimSpace(workspace)
	if workspace == "" {
		return
	}
	path := filepath.Join(s.baseDir, workspace+snapshotExt)
	_ = os.Remove(path)
	s.mu.Lock()
	delete(s.snaps, workspace)
	s.mu.Unlock()
}

// GC enforces the TTL and disk size caps.
func (s *Store) GC(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cfg.TTL > 0 {
		s.expireByTTL(time.Now().UTC())
	}
	if s.cfg.MaxDiskBytes > 0 {
		return s.enforceDiskCap(ctx)
	}
	return nil
}

func (s *Store) expireByTTL(now time.Time) {
	cutoff := now.Add(-s.cfg.TTL)
	var expired []string
	s.mu.RLock()
	for ws, snap := range s.snaps {
		if snap.SavedAt.Before(cutoff) {
			expired = append(expired, ws)
		}
	}
	s.mu.RUnlock()
	for _, ws := range expired {
		s.Delete(ws)
	}
}

type snapshotFile struct {
	workspace string
	path      string
	size      int64
	savedAt   time.Time
}

func (s *Store) enforceDiskCap(ctx context.Context) error {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("layoutstore: read layout dir: %w", err)
	}
	var files []snapshotFile
	total := int64(0)
	s.mu.RLock()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			s.mu.RUnlock()
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		ws := strings.TrimSuffix(entry.Name(), snapshotExt)
		savedAt := info.ModTime()
		if snap, ok := s.snaps[ws]; ok && !snap.SavedAt.IsZero() {
			savedAt = snap.SavedAt
		}
		total += info.Size()
		files = append(files, snapshotFile{
			workspace: ws,
			path:      filepath.Join(s.baseDir, entry.Name()),
			size:      info.Size(),
			savedAt:   savedAt,
		})
	}
	s.mu.RUnlock()
	if total <= s.cfg.MaxDiskBytes {
		return nil
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].savedAt.Before(files[j].savedAt)
	})
	for _, file := range files {
		if total <= s.cfg.MaxDiskBytes {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = os.Remove(file.path)
		total -= file.size
		s.mu.Lock()
		delete(s.snaps, file.workspace)
		s.mu.Unlock()
	}
	return nil
}

func (s *Store) loadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("layoutstore: read snapshot: %w", err)
	}
	raw, err := gunzip(bytes.NewReader(data))
	if err != nil {
		return Snapshot{}, err
	}
	if err := ValidateJSON(raw); err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("layoutstore: decode snapshot: %w", err)
	}
	if snap.SchemaVersion != CurrentSchemaVersion {
		return Snapshot{}, fmt.Errorf("layoutstore: unknown schema %d", snap.SchemaVersion)
	}
	return snap, nil
}

func (s *Store) quarantine(path string) {
	_ = os.MkdirAll(filepath.Join(s.baseDir, quarantineDirName), 0o700)
	base := filepath.Base(path)
	now := time.Now().UTC().Format("20060102-150405")
	target := filepath.Join(s.baseDir, quarantineDirName, base+"-"+now)
	_ = os.Rename(path, target)
}

func encodeSnapshot(snap *Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, errors.New("layoutstore: snapshot is nil")
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := json.NewEncoder(gz)
	if err := enc.Encode(snap); err != nil {
		_ = gz.Close()
		return nil, fmt.Errorf("layoutstore: encode snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("layoutstore: close snapshot gzip: %w", err)
	}
	return buf.Bytes(), nil
}

func gunzip(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("layoutstore: open snapshot gzip: %w", err)
	}
	raw, readErr := io.ReadAll(gz)
	closeErr := gz.Close()
	if readErr != nil {
		return nil, fmt.Errorf("layoutstore: read snapshot gzip: %w", readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("layoutstore: close snapshot gzip: %w", closeErr)
	}
	return raw, nil
}

// SanitizeWorkspace validates a workspace name for use as a snapshot
// file name. Only [a-zA-Z0-9-_] is accepted.
func SanitizeWorkspace(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("layoutstore: workspace is required")
	}
	for _, r := range value {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '-' || r == '_' {
			continue
		}
		return "", fmt.Errorf("layoutstore: invalid workspace %q", value)
	}
	return value, nil
}
