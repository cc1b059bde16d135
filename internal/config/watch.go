package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce batches editor write bursts into one reload.
const DefaultWatchDebounce = 250 * time.Millisecond

// Watch emits a signal on the returned channel whenever the config file
// changes, debounced. It watches the parent directory because editors
// replace files by rename. The channel closes when ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan struct{}, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("empty config path")
	}
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()
		watchLoop(ctx, watcher, filepath.Base(path), debounce, out)
	}()
	return out, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, base string, debounce time.Duration, out chan<- struct{}) {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !matchesConfigEvent(ev, base) {
				continue
			}
			if !timer.Stop() && pending {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true
		case <-timer.C:
			if pending {
				pending = false
				select {
				case out <- struct{}{}:
				default:
				}
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func matchesConfigEvent(ev fsnotify.Event, base string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return filepath.Base(ev.Name) == base
}
