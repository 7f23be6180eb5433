package clock

import (
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// defineTimeouts arms the notification timers of the remaining phases and
// the terminal timer. Delays are relative to now: the elapsed time is the
// negative offset every phase deadline starts from.
func (c *Clock) defineTimeouts() {
	s := c.settings
	phases := s.Phases()
	lead := s.LeadTime()
	minutes := timeutil.Minutes(lead)
	base := -c.activated

	for i, d := range phases {
		last := i == len(phases)-1

		if s.NotifyMinutesLeft {
			c.arm(base+d-lead, "minutes left", func() {
				if c.settings.NotifyMinutesLeft {
					c.notifier.MinutesLeft(minutes)
				}
			})
		}

		if s.NotifyEnds && !last {
			c.arm(base+d, "phase ended", func() {
				if c.settings.NotifyEnds {
					c.notifier.NextChapter()
				}
			})
		}

		base += d
	}

	c.armTerminal(max(base, 0))
}

// arm schedules a notification. Deadlines already in the past are dropped.
func (c *Clock) arm(delay time.Duration, event string, f func()) {
	if delay <= 0 {
		return
	}

	c.schedule(delay, event, f)
}

func (c *Clock) armTerminal(delay time.Duration) {
	c.schedule(delay, "done", c.done)
}

// schedule registers a timer bound to the current run segment. A callback
// that fires after its segment ended does nothing.
func (c *Clock) schedule(delay time.Duration, event string, f func()) {
	segment := c.segment

	t := c.source.AfterFunc(delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.segment != segment || c.mode != On {
			return
		}

		c.logger.Debug("clock event", "event", event, "elapsed", c.activeTime())

		f()
	})

	c.timeouts = append(c.timeouts, t)
}
