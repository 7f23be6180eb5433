// Package timer renders the proctoring clock in the terminal and relays key
// presses to it
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/proctor/clock"
	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// Options configures the clock screen.
type Options struct {
	Source         timeutil.Clock
	Logger         *slog.Logger
	StatusFilePath string
	Interval       time.Duration
	DarkTheme      bool
	ShowReset      bool
	TwentyFourHour bool
	Muted          bool
}

// Timer is the bubbletea model of the clock screen.
type Timer struct {
	clock    *clock.Clock
	updater  *clock.ViewUpdater
	logger   *slog.Logger
	err      error
	form     *huh.Form
	values   *formValues
	samples  chan clock.View
	keys     keymap
	help     help.Model
	progress progress.Model
	style    style
	opts     Options
	view     clock.View
	muted    bool
}

type sampleMsg clock.View

// New creates the clock screen for c. The returned model owns a ViewUpdater
// that samples c at opts.Interval while the clock is running.
func New(c *clock.Clock, opts Options) *Timer {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if opts.Source == nil {
		opts.Source = timeutil.RealClock()
	}

	t := &Timer{
		clock:   c,
		logger:  opts.Logger,
		samples: make(chan clock.View, 1),
		keys:    defaultKeymap,
		help:    help.New(),
		style:   newStyle(opts.DarkTheme),
		opts:    opts,
		view:    c.View(),
	}

	t.keys.reset.SetEnabled(opts.ShowReset)

	progressOpts := []progress.Option{progress.WithDefaultGradient()}
	if !opts.DarkTheme {
		progressOpts = []progress.Option{progress.WithSolidFill("#2A7AB0")}
	}

	t.progress = progress.New(progressOpts...)

	t.updater = clock.NewViewUpdater(
		opts.Interval,
		c,
		t.deliver,
		clock.WithUpdaterTimeSource(opts.Source),
	)

	if opts.Muted {
		t.muted = true
		c.Mute()
	}

	return t
}

// deliver hands a sample to the bubbletea loop. Only the latest sample is
// kept if the loop falls behind.
func (t *Timer) deliver(v clock.View) {
	for {
		select {
		case t.samples <- v:
			return
		default:
		}

		select {
		case <-t.samples:
		default:
		}
	}
}

func (t *Timer) waitForSample() tea.Cmd {
	return func() tea.Msg {
		return sampleMsg(<-t.samples)
	}
}

func (t *Timer) now() time.Time {
	return t.opts.Source.Now()
}

// Init implements tea.Model.
func (t *Timer) Init() tea.Cmd {
	return t.waitForSample()
}

// Close stops sampling and returns the clock to Off, releasing the screen
// and any announcement in progress.
func (t *Timer) Close() {
	t.updater.Deactivate()
	t.clock.Reset()
	t.record(t.clock.View())
}

// record stores v as the displayed view and publishes it to the status file.
func (t *Timer) record(v clock.View) {
	t.view = v

	if t.opts.StatusFilePath == "" {
		return
	}

	s := &Status{
		UpdatedAt:     t.now(),
		View:          v,
		ChaptersCount: t.clock.Settings().ChaptersCount,
	}

	err := writeStatusFile(t.opts.StatusFilePath, s)
	if err != nil {
		t.logger.Warn("unable to write status file",
			slog.String("path", t.opts.StatusFilePath),
			slog.Any("error", err),
		)
	}
}
