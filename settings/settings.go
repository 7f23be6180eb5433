// Package settings defines the timing and display settings of the proctoring
// clock and the rules for updating them
package settings

import (
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// Version tags the persisted settings blob. It combines the clock schema
// version with the client schema version.
const Version = 2

// ClockSettings configures the phases of a session and how they are
// announced and displayed. It is a value object: updates produce a new value
// through Apply.
type ClockSettings struct {
	EssaySeconds            float64 `json:"essaySeconds"`
	ChapterSeconds          float64 `json:"chapterSeconds"`
	SecondsLeftCount        float64 `json:"secondsLeftCount"`
	ChaptersCount           int     `json:"chaptersCount"`
	WithEssay               bool    `json:"withEssay"`
	NotifyMinutesLeft       bool    `json:"notifyMinutesLeft"`
	NotifyEnds              bool    `json:"notifyEnds"`
	ResetVisualClockEssay   bool    `json:"resetVisualClockEssay"`
	ResetVisualClockChapter bool    `json:"resetVisualClockChapter"`
	ChapterPercent          bool    `json:"chapterPercent"`
}

// Default returns the settings used when nothing has been stored yet.
func Default() ClockSettings {
	return ClockSettings{
		WithEssay:               true,
		EssaySeconds:            30 * 60,
		ChaptersCount:           8,
		ChapterSeconds:          20 * 60,
		NotifyEnds:              true,
		NotifyMinutesLeft:       true,
		SecondsLeftCount:        5 * 60,
		ResetVisualClockEssay:   true,
		ResetVisualClockChapter: true,
		ChapterPercent:          true,
	}
}

// Essay returns the length of the essay phase. It is returned even when the
// essay is disabled.
func (s ClockSettings) Essay() time.Duration {
	return timeutil.Seconds(s.EssaySeconds)
}

// Chapter returns the length of a single chapter.
func (s ClockSettings) Chapter() time.Duration {
	return timeutil.Seconds(s.ChapterSeconds)
}

// LeadTime returns how long before the end of a phase the warning fires.
func (s ClockSettings) LeadTime() time.Duration {
	return timeutil.Seconds(s.SecondsLeftCount)
}

// Phases returns the duration of every phase in the order they run.
func (s ClockSettings) Phases() []time.Duration {
	phases := make([]time.Duration, 0, s.PhaseCount())

	if s.WithEssay {
		phases = append(phases, s.Essay())
	}

	for range max(s.ChaptersCount, 0) {
		phases = append(phases, s.Chapter())
	}

	return phases
}

// PhaseCount returns the number of phases in a session.
func (s ClockSettings) PhaseCount() int {
	n := max(s.ChaptersCount, 0)
	if s.WithEssay {
		n++
	}

	return n
}

// Total returns the length of the whole session.
func (s ClockSettings) Total() time.Duration {
	var total time.Duration

	for _, d := range s.Phases() {
		total += d
	}

	return total
}

// Apply merges p into a copy of s, then runs the normalisation rules.
func (s ClockSettings) Apply(p Patch) ClockSettings {
	merged := s.merge(p)

	for _, r := range normalisationRules {
		if r.applies(p) {
			r.apply(&merged)
		}
	}

	return merged
}

func (s ClockSettings) merge(p Patch) ClockSettings {
	if p.WithEssay != nil {
		s.WithEssay = *p.WithEssay
	}

	if p.EssaySeconds != nil {
		s.EssaySeconds = *p.EssaySeconds
	}

	if p.ChaptersCount != nil {
		s.ChaptersCount = *p.ChaptersCount
	}

	if p.ChapterSeconds != nil {
		s.ChapterSeconds = *p.ChapterSeconds
	}

	if p.NotifyMinutesLeft != nil {
		s.NotifyMinutesLeft = *p.NotifyMinutesLeft
	}

	if p.SecondsLeftCount != nil {
		s.SecondsLeftCount = *p.SecondsLeftCount
	}

	if p.NotifyEnds != nil {
		s.NotifyEnds = *p.NotifyEnds
	}

	if p.ResetVisualClockEssay != nil {
		s.ResetVisualClockEssay = *p.ResetVisualClockEssay
	}

	if p.ResetVisualClockChapter != nil {
		s.ResetVisualClockChapter = *p.ResetVisualClockChapter
	}

	if p.ChapterPercent != nil {
		s.ChapterPercent = *p.ChapterPercent
	}

	return s
}
