// Package favorites keeps a local mirror of starred issue IDs so stars
// survive service restarts and offline sessions.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/scourlabs/scour/internal/atomicfile"
	"github.com/scourlabs/scour/internal/runenv"
)

var ErrDisabled = errors.New("favorites state disabled")

// State captures persisted favorite metadata.
type State struct {
	IssueIDs  []string  `json:"issue_ids"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Has reports whether the issue is marked favorite.
func (s State) Has(issueID string) bool {
	for _, id := range s.IssueIDs {
		if id == issueID {
			return true
		}
	}
	return false
}

// Set adds or removes an issue and reports whether the state changed.
func (s *State) Set(issueID string, favorite bool) bool {
	if s == nil || issueID == "" {
		return false
	}
	if favorite {
		if s.Has(issueID) {
			return false
		}
		s.IssueIDs = append(s.IssueIDs, issueID)
		sort.Strings(s.IssueIDs)
		return true
	}
	for i, id := range s.IssueIDs {
		if id == issueID {
			s.IssueIDs = append(s.IssueIDs[:i], s.IssueIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Store loads and saves favorite state.
type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

// FileStore persists favorite state to a JSON file.
type FileStore struct {
	Path string
}

// DefaultStatePath resolves the favorites file path.
func DefaultStatePath() (string, error) {
	if runenv.FreshConfigEnabled() {
		return "", ErrDisabled
	}
	if dir := runenv.DataDir(); dir != "" {
		return filepath.Join(dir, "favorites.json"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "scour", "state", "favorites.json"), nil
}

// Load reads favorite state from disk. A missing file yields empty state.
func (s FileStore) Load(ctx context.Context) (State, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	path, err := cleanPath(s.Path)
	if err != nil {
		return State{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read favorites: %w", err)
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("parse favorites: %w", err)
	}
	sort.Strings(state.IssueIDs)
	return state, nil
}

// Save writes favorite state to disk atomically.
func (s FileStore) Save(ctx context.Context, state State) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := cleanPath(s.Path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return fmt.Errorf("favorites path missing directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now().UTC()
	}
	sort.Strings(state.IssueIDs)
	if err := atomicfile.SaveJSON(path, state, 0o600); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

func cleanPath(path string) (string, error) {
	if path == "" {
		return "", ErrDisabled
	}
	cleaned := filepath.Clean(path)
	if !filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("favorites path must be absolute")
	}
	return cleaned, nil
}
