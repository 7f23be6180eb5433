package settings

import (
	"math"
	"strconv"
	"strings"

	"github.com/ayoisaiah/proctor/internal/apperr"
)

var (
	errNotANumber = &apperr.Error{
		Message: "%s must be a number, got %q",
	}

	errNegative = &apperr.Error{
		Message: "%s cannot be negative, got %v",
	}

	errNotFinite = &apperr.Error{
		Message: "%s must be a finite number",
	}
)

// Patch is a partial update of ClockSettings. Nil fields are left untouched.
type Patch struct {
	WithEssay               *bool
	EssaySeconds            *float64
	ChaptersCount           *int
	ChapterSeconds          *float64
	NotifyMinutesLeft       *bool
	SecondsLeftCount        *float64
	NotifyEnds              *bool
	ResetVisualClockEssay   *bool
	ResetVisualClockChapter *bool
	ChapterPercent          *bool
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// AffectsTiming reports whether the patch touches a field that changes when
// notifications or the end of the session are due.
func (p Patch) AffectsTiming() bool {
	return p.WithEssay != nil ||
		p.EssaySeconds != nil ||
		p.ChapterSeconds != nil ||
		p.SecondsLeftCount != nil ||
		p.ChaptersCount != nil
}

// Validate rejects numeric values that must never be stored.
func (p Patch) Validate() error {
	floats := []struct {
		v    *float64
		name string
	}{
		{p.EssaySeconds, "essay length"},
		{p.ChapterSeconds, "chapter length"},
		{p.SecondsLeftCount, "warning lead time"},
	}

	for _, f := range floats {
		if f.v == nil {
			continue
		}

		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) {
			return errNotFinite.Fmt(f.name)
		}

		if *f.v < 0 {
			return errNegative.Fmt(f.name, *f.v)
		}
	}

	if p.ChaptersCount != nil && *p.ChaptersCount < 0 {
		return errNegative.Fmt("chapter count", *p.ChaptersCount)
	}

	return nil
}

// ParseMinutes converts user input expressed in minutes to seconds. Values
// that are not finite and non-negative are rejected.
func ParseMinutes(field, input string) (float64, error) {
	input = strings.TrimSpace(input)

	mins, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, errNotANumber.Fmt(field, input)
	}

	if math.IsNaN(mins) || math.IsInf(mins, 0) {
		return 0, errNotFinite.Fmt(field)
	}

	if mins < 0 {
		return 0, errNegative.Fmt(field, mins)
	}

	return mins * 60, nil
}

// FormatMinutes renders a seconds value in minutes the way ParseMinutes
// reads it back.
func FormatMinutes(secs float64) string {
	return strconv.FormatFloat(secs/60, 'f', -1, 64)
}

// ParseCount converts user input to a non-negative count.
func ParseCount(field, input string) (int, error) {
	input = strings.TrimSpace(input)

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errNotANumber.Fmt(field, input)
	}

	if n < 0 {
		return 0, errNegative.Fmt(field, n)
	}

	return n, nil
}

// rule is a side effect implied by a field being present in a patch.
type rule struct {
	applies func(p Patch) bool
	apply   func(s *ClockSettings)
	name    string
}

// normalisationRules run in order after every merge.
//
//	trigger                         | side effect
//	--------------------------------+---------------------------------------------
//	resetVisualClockEssay           | resetVisualClockChapter takes the same value
//	any timing field or             | lead time longer than a phase disables the
//	notifyMinutesLeft               | "minutes left" warning
var normalisationRules = []rule{
	{
		name: "essay reset drives chapter reset",
		applies: func(p Patch) bool {
			return p.ResetVisualClockEssay != nil
		},
		apply: func(s *ClockSettings) {
			s.ResetVisualClockChapter = s.ResetVisualClockEssay
		},
	},
	{
		name: "warning cannot precede the phase it warns about",
		applies: func(p Patch) bool {
			return p.AffectsTiming() || p.NotifyMinutesLeft != nil
		},
		apply: func(s *ClockSettings) {
			if s.SecondsLeftCount > shortestPhase(*s) {
				s.NotifyMinutesLeft = false
			}
		},
	},
}

func shortestPhase(s ClockSettings) float64 {
	shortest := math.Inf(1)

	if s.WithEssay {
		shortest = s.EssaySeconds
	}

	if s.ChaptersCount > 0 {
		shortest = math.Min(shortest, s.ChapterSeconds)
	}

	return shortest
}
