package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceWindow covers the data-then-signature write pair of a single
// cache save.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces a burst of bumps into a single callback invocation,
// fired once the window elapses without a new bump.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	armed    bool
	window   time.Duration
	callback func()
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Bump records an event and restarts the window.
func (d *Debouncer) Bump() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.armed = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fired := d.armed
	d.armed = false
	d.timer = nil
	d.mu.Unlock()

	if fired && d.callback != nil {
		d.callback()
	}
}

// Cancel discards any pending bump without firing the callback. A timer that
// already started firing finds armed false and does nothing.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush fires the callback immediately if a bump is pending. It blocks until
// the callback completes, for shutdown paths.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired; let it complete rather than firing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	fired := d.armed
	d.armed = false
	d.mu.Unlock()

	if fired && d.callback != nil {
		d.callback()
	}
}
