// Package notify announces clock events through speech, tones and desktop
// notifications. Announcers never return errors: a capability that is not
// available on the current machine degrades to doing nothing.
package notify

import (
	"math"
	"strconv"

	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// Notifier is implemented by every announcer in this package.
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

const (
	PhraseStart       = "Start now."
	PhraseContinue    = "Continue now."
	PhraseNextChapter = "Chapter finished, continue to the next one."
	PhraseEnd         = "Pencils down. Time's up."
)

// MinutesLeftPhrase renders the warning for the given lead time. Lead times
// under a minute are spoken in seconds.
func MinutesLeftPhrase(minutes float64) string {
	if minutes > 0 && minutes < 1 {
		secs := timeutil.Round(minutes * 60)
		if secs == 1 {
			return "1 second left."
		}

		return strconv.Itoa(secs) + " seconds left."
	}

	if minutes == 1 {
		return "1 minute left."
	}

	return strconv.FormatFloat(math.Round(minutes*10)/10, 'f', -1, 64) +
		" minutes left."
}

// Multi fans every call out to each notifier in order.
type Multi []Notifier

func (m Multi) Start() {
	for _, n := range m {
		n.Start()
	}
}

func (m Multi) Continue() {
	for _, n := range m {
		n.Continue()
	}
}

func (m Multi) MinutesLeft(minutes float64) {
	for _, n := range m {
		n.MinutesLeft(minutes)
	}
}

func (m Multi) NextChapter() {
	for _, n := range m {
		n.NextChapter()
	}
}

func (m Multi) End() {
	for _, n := range m {
		n.End()
	}
}

func (m Multi) Cancel() {
	for _, n := range m {
		n.Cancel()
	}
}

func (m Multi) Mute() {
	for _, n := range m {
		n.Mute()
	}
}

func (m Multi) Unmute() {
	for _, n := range m {
		n.Unmute()
	}
}

// Nop ignores every call.
type Nop struct{}

func (Nop) Start()              {}
func (Nop) Continue()           {}
func (Nop) MinutesLeft(float64) {}
func (Nop) NextChapter()        {}
func (Nop) End()                {}
func (Nop) Cancel()             {}
func (Nop) Mute()               {}
func (Nop) Unmute()             {}
