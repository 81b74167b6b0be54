package autosave

import (
	"sync"
	"time"
)

// DefaultSettleDelay is how long edits must be quiet before a scheduled
// write runs.
const DefaultSettleDelay = 500 * time.Millisecond

// Debouncer is a single-slot scheduler: Schedule cancels any previously
// scheduled function and replaces it, so only the last function of a burst
// runs once the settle delay elapses. Intermediate states are superseded
// and never executed.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
	gen     uint64
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &Debouncer{delay: delay}
}

// Schedule replaces the slot's pending function and restarts the settle
// timer. After Stop, Schedule is a no-op.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if d.stopped || gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	fn()
}

// Flush runs the pending function immediately, if any. Callers tearing a
// form session down use this for a best-effort final write.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop abandons any pending function without running it and disables the
// slot permanently.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.mu.Unlock()
}

// Pending reports whether a write is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
