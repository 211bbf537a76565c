package filter

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is the time without triggers before a recomputation runs
const DefaultQuietPeriod = 300 * time.Millisecond

// Timer is a scheduled call that can be cancelled
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler schedules on the runtime timers
func RealScheduler() Scheduler {
	return realScheduler{}
}

// Debouncer collapses bursts of triggers into one call of fn, made once the
// quiet period has passed since the last trigger. Each trigger takes a new
// token; a timer whose token is no longer current does nothing, even if it
// fires after being stopped.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	sched   Scheduler
	fn      func(token uint64)
	token   uint64
	pending Timer
	closed  bool
}

// NewDebouncer creates a debouncer calling fn with the token of the trigger
// that scheduled it. A nil scheduler uses runtime timers.
func NewDebouncer(delay time.Duration, sched Scheduler, fn func(token uint64)) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	if sched == nil {
		sched = RealScheduler()
	}
	return &Debouncer{delay: delay, sched: sched, fn: fn}
}

// Trigger cancels any pending call and schedules a new one
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}
	d.token++
	token := d.token
	d.pending = d.sched.AfterFunc(d.delay, func() { d.fire(token) })
}

// Flush runs the pending call now, if there is one
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.closed || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending.Stop()
	token := d.token
	d.mu.Unlock()

	d.fire(token)
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Valid reports whether token belongs to the latest trigger and the
// debouncer is still open
func (d *Debouncer) Valid(token uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.closed && token == d.token
}

// Close cancels any pending call and invalidates every token handed out
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.token++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *Debouncer) fire(token uint64) {
	d.mu.Lock()
	if d.closed || token != d.token || d.pending == nil {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	// fn runs without the lock so it may trigger again
	d.fn(token)
}
