// Package debounce runs only the last of a burst of calls once the caller goes quiet.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
	seq     uint64
}

func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Call supersedes any pending call and schedules fn after the quiet period.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = time.AfterFunc(d.wait, func() { d.fire(seq) })
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	// A newer Call or a Cancel/Flush got here first.
	if seq != d.seq || d.pending == nil {
		d.mu.Unlock()

		return
	}

	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	fn()
}

// Cancel drops the pending call, if any. It reports whether one was dropped.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.drop() != nil
}

// Flush runs the pending call immediately on the caller's goroutine.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	fn := d.drop()
	d.mu.Unlock()

	if fn == nil {
		return false
	}

	fn()

	return true
}

func (d *Debouncer) drop() func() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.seq++
	fn := d.pending
	d.pending = nil

	return fn
}
