// Package watcher notifies the application when another process rewrites the
// persisted cache documents. A save touches the data file and then the
// signature file; the debouncer coalesces that burst into one notification.
package watcher

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports"
)

var _ ports.CacheWatcher = (*CacheWatcher)(nil)

const eventChannelBuffer = 16

// CacheWatcher watches the cache directory for external writes to the data
// or signature file.
type CacheWatcher struct {
	dir       string
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	events    chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewCacheWatcher creates a watcher for the cache documents in dir.
func NewCacheWatcher(dir string) (*CacheWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &CacheWatcher{
		dir:       dir,
		fsWatcher: fsWatcher,
		events:    make(chan struct{}, eventChannelBuffer),
	}
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.notify)
	return w, nil
}

// Start begins watching the cache directory. The directory must exist.
func (w *CacheWatcher) Start(ctx context.Context) error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}

	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher and releases its resources. A debounce window still
// open at this point is discarded, and the events channel is closed so
// receivers unblock. Stop is idempotent.
func (w *CacheWatcher) Stop() error {
	err := w.fsWatcher.Close()
	w.debouncer.Cancel()

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.events)
	}
	w.mu.Unlock()

	return err
}

// Events delivers one signal per coalesced burst of cache-file writes.
func (w *CacheWatcher) Events() <-chan struct{} {
	return w.events
}

func (w *CacheWatcher) notify() {
	// A timer armed before Stop may still fire; the closed flag keeps it
	// from sending on the closed channel.
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	select {
	case w.events <- struct{}{}:
	default:
		// A pending signal already covers this burst.
	}
}

// processEvents drains fsnotify until the watcher closes or ctx is done.
// Closing the events channel is Stop's job, never this goroutine's: a
// debounce timer could still be in flight when the loop exits.
func (w *CacheWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isCacheFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debouncer.Bump()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *CacheWatcher) isCacheFile(path string) bool {
	name := filepath.Base(path)
	return name == domain.CacheFileName || name == domain.CacheSigFileName
}
