package cloud

import (
	"sync"
	"time"
)

// DebounceWindow is how long a burst of local mutations coalesces before one
// outbound write goes out.
const DebounceWindow = 2 * time.Second

// Debouncer holds a single pending write: each trigger replaces the previous
// pending one, so only the most recent write in a burst survives. The per-
// second timer mutation stream collapses to at most one remote write every
// window.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func()
	timer  *time.Timer
}

// NewDebouncer wraps fn in a coalescing window. A zero window uses
// DebounceWindow.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	if window <= 0 {
		window = DebounceWindow
	}
	return &Debouncer{window: window, fn: fn}
}

// Trigger schedules fn after the window, cancelling and replacing any pending
// schedule.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Flush runs any pending write immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil && d.timer.Stop()
	d.timer = nil
	d.mu.Unlock()
	if pending {
		d.fn()
	}
}

// Stop drops any pending write without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
