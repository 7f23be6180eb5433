// Package clock implements the proctoring clock. The clock is a stopwatch:
// elapsed time is always recomputed from the wall clock, never accumulated
// from ticks. It walks through an optional essay phase and a number of equal
// chapter phases, schedules notifications for every phase boundary with
// one-shot timers and answers point-in-time view queries. ViewUpdater samples
// those views at a display cadence.
package clock

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
	"github.com/ayoisaiah/proctor/settings"
)

// Notifier announces clock events. Calls are fire-and-forget and must not
// call back into the Clock.
type Notifier interface {
	Start()
	Continue()
	MinutesLeft(minutes float64)
	NextChapter()
	End()
	Cancel()
	Mute()
	Unmute()
}

// ScreenWaker keeps the screen awake while the clock runs. Both methods are
// idempotent and must return without waiting for the platform.
type ScreenWaker interface {
	KeepScreenOn()
	ReleaseScreen()
}

// SettingsSaver persists the full settings object after every change.
type SettingsSaver interface {
	SaveSettings(s settings.ClockSettings) error
}

// State is the phase decomposition of the active time.
type State struct {
	ActiveTime   time.Duration
	ChapterTime  time.Duration
	ChapterIndex int
	InEssay      bool
}

// Clock owns the settings and timing state of a proctoring session. All
// methods are safe for concurrent use.
type Clock struct {
	lastStart time.Time
	notifier  Notifier
	waker     ScreenWaker
	saver     SettingsSaver
	source    timeutil.Clock
	logger    *slog.Logger
	timeouts  []timeutil.Timer
	settings  settings.ClockSettings
	activated time.Duration
	segment   uint64
	mode      Mode
	mu        sync.Mutex
}

// Option configures a Clock.
type Option func(*Clock)

// WithNotifier sets the notifier used for announcements.
func WithNotifier(n Notifier) Option {
	return func(c *Clock) {
		c.notifier = n
	}
}

// WithScreenWaker sets the screen waker held while the clock runs.
func WithScreenWaker(w ScreenWaker) Option {
	return func(c *Clock) {
		c.waker = w
	}
}

// WithSettingsSaver sets where settings are persisted after each change.
func WithSettingsSaver(s SettingsSaver) Option {
	return func(c *Clock) {
		c.saver = s
	}
}

// WithTimeSource replaces the wall clock and timers.
func WithTimeSource(source timeutil.Clock) Option {
	return func(c *Clock) {
		c.source = source
	}
}

// WithSettings sets the initial settings without persisting them.
func WithSettings(s settings.ClockSettings) Option {
	return func(c *Clock) {
		c.settings = s
	}
}

// WithLogger sets the logger used for transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Clock) {
		c.logger = l
	}
}

// New creates a Clock in the Off mode.
func New(opts ...Option) *Clock {
	c := &Clock{
		notifier: nopNotifier{},
		waker:    nopWaker{},
		source:   timeutil.RealClock(),
		logger:   slog.Default(),
		settings: settings.Default(),
		mode:     Off,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start resets the clock and runs it from zero.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset(false)
	c.resume(true)
	c.notifier.Start()
}

// Continue runs a paused clock.
func (c *Clock) Continue() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resume(false)
}

// Stop pauses a running clock, keeping the elapsed time.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pause(false)
}

// Reset stops the clock and discards the elapsed time.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reset(false)
}

// Mute silences the notifier without affecting scheduling.
func (c *Clock) Mute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notifier.Mute()
}

// Unmute restores the notifier.
func (c *Clock) Unmute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notifier.Unmute()
}

// Mode returns the current mode.
func (c *Clock) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

// Settings returns a copy of the current settings.
func (c *Clock) Settings() settings.ClockSettings {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.settings
}

// Elapsed returns the total time the clock has been running in this session.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.activeTime()
}

// State returns the phase decomposition of the elapsed time. It is the zero
// State unless the clock is running or paused.
func (c *Clock) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode != On && c.mode != Paused {
		return State{}
	}

	return c.calcState()
}

// SetSettings merges p into the settings and persists the result. When p
// changes timing while the clock runs, the pending timers are rebuilt
// against the new settings without losing elapsed time. Invalid patches are
// rejected and nothing is stored.
func (c *Clock) SetSettings(p settings.Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()

	rearm := p.AffectsTiming() && c.mode == On
	if rearm {
		c.suspend()
	}

	c.settings = c.settings.Apply(p)

	if rearm {
		c.run()
	}

	merged := c.settings

	c.mu.Unlock()

	if c.saver == nil {
		return nil
	}

	if err := c.saver.SaveSettings(merged); err != nil {
		c.logger.Error("saving settings failed", "error", err)
		return errSaveSettings.Wrap(err)
	}

	return nil
}

// resume moves a paused or reset clock to On.
func (c *Clock) resume(muted bool) {
	if c.mode == On || c.mode == Done {
		return
	}

	c.run()
	c.waker.KeepScreenOn()

	if !muted {
		c.notifier.Continue()
	}

	c.logger.Debug("clock running", "elapsed", c.activated)
}

// pause moves a running clock to Paused.
func (c *Clock) pause(muted bool) {
	if c.mode != On {
		return
	}

	c.suspend()
	c.waker.ReleaseScreen()

	if !muted {
		c.notifier.Cancel()
	}

	c.logger.Debug("clock paused", "elapsed", c.activated)
}

func (c *Clock) reset(muted bool) {
	if c.mode == On {
		c.suspend()
	}

	c.clearTimeouts()
	c.activated = 0
	c.mode = Off
	c.waker.ReleaseScreen()

	if !muted {
		c.notifier.Cancel()
	}
}

// done is the terminal transition, run only by its own timer.
func (c *Clock) done() {
	c.reset(false)
	c.mode = Done

	if c.settings.NotifyEnds {
		c.notifier.End()
	}

	c.logger.Debug("clock done")
}

// run starts a run segment from the current elapsed time.
func (c *Clock) run() {
	c.lastStart = c.source.Now()
	c.mode = On
	c.defineTimeouts()
}

// suspend ends the current run segment, folding its time into activated.
func (c *Clock) suspend() {
	c.activated += c.source.Now().Sub(c.lastStart)
	c.clearTimeouts()
	c.mode = Paused
}

func (c *Clock) clearTimeouts() {
	for _, t := range c.timeouts {
		t.Stop()
	}

	c.timeouts = nil
	c.segment++
}

func (c *Clock) activeTime() time.Duration {
	if c.mode != On {
		return c.activated
	}

	return c.source.Now().Sub(c.lastStart) + c.activated
}

// calcState decomposes the active time into the current phase.
func (c *Clock) calcState() State {
	return phaseAt(c.settings, c.activeTime())
}

func phaseAt(s settings.ClockSettings, active time.Duration) State {
	st := State{ActiveTime: active}

	if s.WithEssay && active < s.Essay() {
		st.InEssay = true
		st.ChapterTime = active

		return st
	}

	remaining := active

	if s.WithEssay {
		remaining -= s.Essay()
		st.ChapterIndex = 1
	}

	chapter := s.Chapter()
	if chapter <= 0 {
		st.ChapterIndex += max(s.ChaptersCount, 0)
		st.ChapterTime = remaining

		return st
	}

	st.ChapterIndex += int(remaining / chapter)
	st.ChapterTime = remaining % chapter

	return st
}

type nopNotifier struct{}

func (nopNotifier) Start()              {}
func (nopNotifier) Continue()           {}
func (nopNotifier) MinutesLeft(float64) {}
func (nopNotifier) NextChapter()        {}
func (nopNotifier) End()                {}
func (nopNotifier) Cancel()             {}
func (nopNotifier) Mute()               {}
func (nopNotifier) Unmute()             {}

type nopWaker struct{}

func (nopWaker) KeepScreenOn()  {}
func (nopWaker) ReleaseScreen() {}
