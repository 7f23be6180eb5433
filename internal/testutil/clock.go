package testutil

import (
	"sync"
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// FakeClock is a timeutil.Clock whose time only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance, in deadline
// order.
type FakeClock struct {
	now    time.Time
	timers []*fakeTimer
	mu     sync.Mutex
	seq    int
}

type fakeTimer struct {
	deadline time.Time
	clock    *FakeClock
	f        func()
	seq      int
	stopped  bool
	fired    bool
}

// NewFakeClock creates a FakeClock starting at the given time.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *FakeClock) AfterFunc(d time.Duration, f func()) timeutil.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d < 0 {
		d = 0
	}

	c.seq++

	t := &fakeTimer{
		clock:    c,
		deadline: c.now.Add(d),
		f:        f,
		seq:      c.seq,
	}

	c.timers = append(c.timers, t)

	return t
}

// Advance moves the clock forward by d, firing every timer that falls due
// along the way, including timers armed by callbacks fired during the call.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()

		next := c.nextDue(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()

			return
		}

		if next.deadline.After(c.now) {
			c.now = next.deadline
		}

		next.fired = true

		c.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int

	for _, t := range c.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}

	return n
}

func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	var next *fakeTimer

	for _, t := range c.timers {
		if t.fired || t.stopped || t.deadline.After(target) {
			continue
		}

		if next == nil ||
			t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}

	return next
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.fired || t.stopped {
		return false
	}

	t.stopped = true

	return true
}

// Frames is a frame scheduler that runs every requested frame immediately.
type Frames struct {
	mu       sync.Mutex
	requests int
}

func (f *Frames) RequestFrame(fn func()) {
	f.mu.Lock()
	f.requests++
	f.mu.Unlock()

	fn()
}

// Requests returns how many frames have been requested so far.
func (f *Frames) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests
}
