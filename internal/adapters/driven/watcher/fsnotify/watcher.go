// Package fsnotify implements driven.Watcher using github.com/fsnotify/fsnotify.
// It watches a single catalog file and reports changes once the file has
// been quiet for the debounce interval, since editors and copy tools often
// write a file in several steps.
package fsnotify

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// DefaultDebounce is how long a file must be quiet before onChange fires.
const DefaultDebounce = 200 * time.Millisecond

// ErrAlreadyWatching is returned by a second Watch call.
var ErrAlreadyWatching = errors.New("watcher already started")

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// Watcher reports writes to one file.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
	timer   *time.Timer
}

// NewWatcher creates a file watcher. A non-positive debounce uses DefaultDebounce.
func NewWatcher(debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fw:       fw,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. The parent directory is watched so that
// files replaced by rename (as most editors save) keep being tracked.
// onChange runs on its own goroutine after the debounce interval.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return ErrAlreadyWatching
	}
	w.started = true
	w.mu.Unlock()

	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	go w.loop(absPath, onChange)
	return nil
}

func (w *Watcher) loop(absPath string, onChange func(string)) {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule(absPath, onChange)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Catalog watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

// schedule (re)starts the quiet-period timer.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			onChange(path)
		}
	})
}

// Close stops watching and releases resources.
// Safe to call multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.done)
	return w.fw.Close()
}
