package clock

import (
	"sync"
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// DefaultInterval is the default sampling cadence of a ViewUpdater.
const DefaultInterval = 500 * time.Millisecond

// Viewer produces display snapshots. *Clock implements it.
type Viewer interface {
	View() View
}

// FrameScheduler runs fn at the next rendering opportunity.
type FrameScheduler interface {
	RequestFrame(fn func())
}

// ViewUpdater samples a Viewer while active and hands every sample to a
// callback. Each delayed sample first waits for a frame, then for the
// interval. The loop stops by itself once it samples Off or Done.
type ViewUpdater struct {
	viewer     Viewer
	frames     FrameScheduler
	source     timeutil.Clock
	pending    timeutil.Timer
	callback   func(View)
	state      View
	interval   time.Duration
	generation uint64
	active     bool
	mu         sync.Mutex
}

// UpdaterOption configures a ViewUpdater.
type UpdaterOption func(*ViewUpdater)

// WithFrameScheduler replaces the default 60 fps frame ticker.
func WithFrameScheduler(f FrameScheduler) UpdaterOption {
	return func(u *ViewUpdater) {
		u.frames = f
	}
}

// WithUpdaterTimeSource replaces the timers used between samples.
func WithUpdaterTimeSource(source timeutil.Clock) UpdaterOption {
	return func(u *ViewUpdater) {
		u.source = source
	}
}

// NewViewUpdater creates an inactive ViewUpdater. A non-positive interval
// selects DefaultInterval.
func NewViewUpdater(
	interval time.Duration,
	viewer Viewer,
	callback func(View),
	opts ...UpdaterOption,
) *ViewUpdater {
	if interval <= 0 {
		interval = DefaultInterval
	}

	u := &ViewUpdater{
		viewer:   viewer,
		callback: callback,
		interval: interval,
		source:   timeutil.RealClock(),
	}

	for _, opt := range opts {
		opt(u)
	}

	if u.frames == nil {
		u.frames = NewFrameTicker(u.source, DefaultFPS)
	}

	return u
}

// Activate samples immediately and keeps sampling until deactivated.
// Activating an active updater does nothing.
func (u *ViewUpdater) Activate() {
	u.mu.Lock()

	if u.active {
		u.mu.Unlock()
		return
	}

	u.active = true
	u.generation++
	gen := u.generation

	u.mu.Unlock()

	u.update(gen)
}

// Deactivate stops the sampling loop. It is safe to call at any time.
func (u *ViewUpdater) Deactivate() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stopLocked()
}

// Now takes one sample outside the loop and returns it.
func (u *ViewUpdater) Now() View {
	v := u.viewer.View()

	u.mu.Lock()

	u.state = v
	if v.Mode.Terminal() {
		u.stopLocked()
	}

	u.mu.Unlock()

	u.callback(v)

	return v
}

// State returns the last sample.
func (u *ViewUpdater) State() View {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.state
}

// Active reports whether the sampling loop is running.
func (u *ViewUpdater) Active() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.active
}

func (u *ViewUpdater) update(gen uint64) {
	v := u.viewer.View()

	u.mu.Lock()

	if !u.active || u.generation != gen {
		u.mu.Unlock()
		return
	}

	u.state = v
	u.pending = nil

	if v.Mode.Terminal() {
		u.stopLocked()
	}

	again := u.active

	u.mu.Unlock()

	u.callback(v)

	if again {
		u.frames.RequestFrame(func() {
			u.wait(gen)
		})
	}
}

// wait arms the interval timer for the next sample of generation gen.
func (u *ViewUpdater) wait(gen uint64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.active || u.generation != gen {
		return
	}

	u.pending = u.source.AfterFunc(u.interval, func() {
		u.update(gen)
	})
}

func (u *ViewUpdater) stopLocked() {
	u.active = false
	u.generation++

	if u.pending != nil {
		u.pending.Stop()
		u.pending = nil
	}
}
