package adminsync

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the window that collapses rapid search
// keystrokes into a single backing fetch.
const DefaultSearchDebounce = 500 * time.Millisecond

// Timer is the stoppable handle a TimerFactory returns
type Timer interface {
	Stop() bool
}

// TimerFactory schedules fn to run after d. The default factory wraps
// time.AfterFunc; tests substitute a manual factory to advance a virtual
// clock.
type TimerFactory func(d time.Duration, fn func()) Timer

func defaultTimerFactory(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Debouncer delays a function call and cancels the pending call when
// rescheduled, so only the last call within the window fires.
type Debouncer struct {
	mu       sync.Mutex
	window   time.Duration
	newTimer TimerFactory
	pending  Timer
}

// NewDebouncer creates a debouncer with the given window
func NewDebouncer(window time.Duration) *Debouncer {
	return NewDebouncerWithTimer(window, defaultTimerFactory)
}

// NewDebouncerWithTimer creates a debouncer with a custom timer factory
func NewDebouncerWithTimer(window time.Duration, factory TimerFactory) *Debouncer {
	return &Debouncer{
		window:   window,
		newTimer: factory,
	}
}

// Schedule arranges for fn to run after the window elapses, cancelling any
// previously scheduled call.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.pending = d.newTimer(d.window, fn)
}

// Stop cancels the pending call, if any
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
