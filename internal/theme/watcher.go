package theme

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

var errEmpty = errors.New("theme file is empty")

// FileWatcher resolves the theme from the contents of a file ("light" or
// "dark") and publishes a change whenever the file is rewritten.
type FileWatcher struct {
	path    string
	log     zerolog.Logger
	watcher *fsnotify.Watcher
	changes chan Theme

	mu      sync.Mutex
	current Theme
}

// NewFileWatcher reads the file once and starts watching its directory, so
// editors that replace the file atomically are still observed. A missing file
// leaves the theme unresolved.
func NewFileWatcher(path string, log zerolog.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create theme watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	fw := &FileWatcher{
		path:    filepath.Clean(path),
		log:     log.With().Str("component", "theme").Logger(),
		watcher: w,
		changes: make(chan Theme, 1),
	}
	fw.current, _ = fw.read()
	return fw, nil
}

func (fw *FileWatcher) Current() Theme {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.current
}

func (fw *FileWatcher) Changes() <-chan Theme { return fw.changes }

// Run forwards file events until ctx is cancelled, then closes the watcher.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fw.reload()
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn().Err(err).Msg("theme watcher error")
		}
	}
}

func (fw *FileWatcher) reload() {
	t, err := fw.read()
	if errors.Is(err, errEmpty) {
		// Truncated mid-write; the next event carries the content.
		return
	}
	if err != nil {
		fw.log.Warn().Err(err).Str("path", fw.path).Msg("ignoring theme file")
		return
	}
	fw.mu.Lock()
	changed := t != fw.current
	fw.current = t
	fw.mu.Unlock()
	if !changed {
		return
	}
	fw.log.Debug().Stringer("theme", t).Msg("theme file changed")
	// Only the latest value matters to the consumer.
	select {
	case <-fw.changes:
	default:
	}
	fw.changes <- t
}

func (fw *FileWatcher) read() (Theme, error) {
	data, err := os.ReadFile(fw.path)
	if err != nil {
		return Unresolved, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Unresolved, errEmpty
	}
	return Parse(string(data))
}
