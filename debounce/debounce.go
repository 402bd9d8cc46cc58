// Package debounce provides a resettable deferred task: every Trigger
// cancels the pending run and schedules a new one, so only the last event in
// a burst runs the task.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn once delay has passed without a new Trigger.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
	// generation invalidates callbacks of timers that were stopped too late.
	generation uint64
}

// New creates a Debouncer. A non-positive delay makes Trigger run fn synchronously.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn, superseding any run that is still pending.
func (d *Debouncer) Trigger() {
	if d.delay <= 0 {
		d.fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.generation++
	gen := d.generation
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || !d.pending {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}

// Flush runs a pending fn immediately. It returns false when nothing was pending.
func (d *Debouncer) Flush() bool {
	if !d.cancel() {
		return false
	}
	d.fn()
	return true
}

// Stop drops a pending run without executing it.
func (d *Debouncer) Stop() bool {
	return d.cancel()
}

// Pending reports whether a run is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.pending {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
	d.pending = false
	return true
}
