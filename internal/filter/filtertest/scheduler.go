// Package filtertest provides a manual scheduler for driving debounced code in
// tests without sleeping.
package filtertest

import (
	"sync"
	"time"

	"github.com/ytget/catalog-browser/internal/filter"
)

// Scheduler records scheduled calls; tests decide when they run
type Scheduler struct {
	mu     sync.Mutex
	timers []*Timer
}

// Timer is a call recorded by Scheduler
type Timer struct {
	Delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

var _ filter.Scheduler = (*Scheduler)(nil)

// AfterFunc records f without running it
func (s *Scheduler) AfterFunc(d time.Duration, f func()) filter.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Timer{Delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Stop marks the timer stopped
func (t *Timer) Stop() bool {
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

// Stopped reports whether Stop was called
func (t *Timer) Stopped() bool {
	return t.stopped
}

// Timers returns every recorded timer in scheduling order
func (s *Scheduler) Timers() []*Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Timer, len(s.timers))
	copy(out, s.timers)
	return out
}

// Active returns timers that are neither stopped nor fired
func (s *Scheduler) Active() []*Timer {
	var active []*Timer
	for _, t := range s.Timers() {
		if !t.stopped && !t.fired {
			active = append(active, t)
		}
	}
	return active
}

// FireActive runs every active timer, as if the quiet period elapsed
func (s *Scheduler) FireActive() int {
	active := s.Active()
	for _, t := range active {
		t.fired = true
		t.f()
	}
	return len(active)
}

// FireAll runs every recorded timer that has not fired yet, including stopped
// ones, to simulate timers that raced their cancellation
func (s *Scheduler) FireAll() {
	for _, t := range s.Timers() {
		if t.fired {
			continue
		}
		t.fired = true
		t.f()
	}
}
