package timeutil

import "time"

// Clock abstracts the wall clock and one-shot timers so that scheduling code
// can be driven by a fake in tests.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f once d has elapsed. f may be called from another
	// goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer.
	Stop() bool
}

type realClock struct{}

// RealClock returns a Clock backed by the time package.
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
