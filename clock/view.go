package clock

import (
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
	"github.com/ayoisaiah/proctor/settings"
)

// View is a point-in-time snapshot of what the display shows.
type View struct {
	Mode Mode `json:"mode"`
	// ChapterIndex is the displayed phase number: 0 for the essay and 1..N
	// for chapters.
	ChapterIndex int     `json:"chapterIndex"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
	Percent      float64 `json:"percent"`
	InEssay      bool    `json:"inEssay"`
}

// View samples the clock.
func (c *Clock) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.getView()
}

func (c *Clock) getView() View {
	s := c.settings

	switch c.mode {
	case Off:
		return View{
			Mode:    Off,
			InEssay: s.WithEssay,
		}
	case Done:
		return View{
			Mode:         Done,
			ChapterIndex: max(s.ChaptersCount, 0),
			InEssay:      s.WithEssay && s.ChaptersCount <= 0,
			Percent:      100,
		}
	}

	return viewOf(s, c.calcState(), c.mode)
}

func viewOf(s settings.ClockSettings, st State, mode Mode) View {
	st = settle(s, st)

	v := View{
		Mode:    mode,
		InEssay: st.InEssay,
	}

	if st.InEssay {
		v.Percent = percent(st.ChapterTime, s.Essay())
		v.Hours, v.Minutes, v.Seconds = digits(st.ChapterTime)

		if !s.ChapterPercent {
			v.Percent = percent(st.ActiveTime, s.Total())
		}

		return v
	}

	// chapters already finished before the current one
	finished := st.ChapterIndex
	if s.WithEssay {
		finished--
	}

	finished = min(max(finished, 0), max(s.ChaptersCount, 0))

	v.ChapterIndex = min(finished+1, max(s.ChaptersCount, 1))

	shown := st.ChapterTime

	if !s.ResetVisualClockChapter {
		shown += time.Duration(finished) * s.Chapter()
	}

	if s.WithEssay && !s.ResetVisualClockEssay {
		shown += s.Essay()
	}

	v.Hours, v.Minutes, v.Seconds = digits(shown)

	if s.ChapterPercent {
		v.Percent = percent(st.ChapterTime, s.Chapter())
	} else {
		v.Percent = percent(st.ActiveTime, s.Total())
	}

	return v
}

// settle pins a state at or past the end of the session to the full last
// phase. The sample taken just before Done must not wrap into a new phase.
func settle(s settings.ClockSettings, st State) State {
	total := s.Total()
	if total <= 0 || st.ActiveTime < total {
		return st
	}

	if s.ChaptersCount > 0 {
		st.InEssay = false
		st.ChapterIndex = s.PhaseCount() - 1
		st.ChapterTime = s.Chapter()

		return st
	}

	st.InEssay = true
	st.ChapterIndex = 0
	st.ChapterTime = s.Essay()

	return st
}

func digits(d time.Duration) (hrs, mins, secs int) {
	return timeutil.SecsToHoursMinsSecs(d.Seconds())
}

// percent returns part as a percentage of whole, clamped to [0, 100]. An
// empty whole counts as complete.
func percent(part, whole time.Duration) float64 {
	if whole <= 0 {
		return 100
	}

	p := 100 * float64(part) / float64(whole)

	return min(max(p, 0), 100)
}
