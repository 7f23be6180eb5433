package timer

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/proctor/settings"
)

const (
	fieldEssay    = "essay length"
	fieldChapters = "chapter count"
	fieldChapter  = "chapter length"
	fieldWarn     = "warning lead time"
)

// formValues are the values bound to the settings form. Minutes are edited
// as text so that the user sees exactly what they typed.
type formValues struct {
	essay         string
	chapters      string
	chapter       string
	warn          string
	withEssay     bool
	notifyEnds    bool
	notifyWarning bool
	resetEssay    bool
	resetChapter  bool
	chapterPct    bool
}

func newFormValues(s settings.ClockSettings) *formValues {
	return &formValues{
		essay:         settings.FormatMinutes(s.EssaySeconds),
		chapters:      strconv.Itoa(s.ChaptersCount),
		chapter:       settings.FormatMinutes(s.ChapterSeconds),
		warn:          settings.FormatMinutes(s.SecondsLeftCount),
		withEssay:     s.WithEssay,
		notifyEnds:    s.NotifyEnds,
		notifyWarning: s.NotifyMinutesLeft,
		resetEssay:    s.ResetVisualClockEssay,
		resetChapter:  s.ResetVisualClockChapter,
		chapterPct:    s.ChapterPercent,
	}
}

// patch returns the fields that differ from s. The form validates its
// inputs, so parse errors are returned only for values set outside the form.
func (v *formValues) patch(s settings.ClockSettings) (settings.Patch, error) {
	var p settings.Patch

	minutes := []struct {
		dst   **float64
		field string
		input string
		cur   float64
	}{
		{&p.EssaySeconds, fieldEssay, v.essay, s.EssaySeconds},
		{&p.ChapterSeconds, fieldChapter, v.chapter, s.ChapterSeconds},
		{&p.SecondsLeftCount, fieldWarn, v.warn, s.SecondsLeftCount},
	}

	for _, m := range minutes {
		secs, err := settings.ParseMinutes(m.field, m.input)
		if err != nil {
			return p, err
		}

		if secs != m.cur {
			*m.dst = settings.Ptr(secs)
		}
	}

	n, err := settings.ParseCount(fieldChapters, v.chapters)
	if err != nil {
		return p, err
	}

	if n != s.ChaptersCount {
		p.ChaptersCount = settings.Ptr(n)
	}

	bools := []struct {
		dst **bool
		val bool
		cur bool
	}{
		{&p.WithEssay, v.withEssay, s.WithEssay},
		{&p.NotifyEnds, v.notifyEnds, s.NotifyEnds},
		{&p.NotifyMinutesLeft, v.notifyWarning, s.NotifyMinutesLeft},
		{&p.ResetVisualClockEssay, v.resetEssay, s.ResetVisualClockEssay},
		{&p.ResetVisualClockChapter, v.resetChapter, s.ResetVisualClockChapter},
		{&p.ChapterPercent, v.chapterPct, s.ChapterPercent},
	}

	for _, b := range bools {
		if b.val != b.cur {
			*b.dst = settings.Ptr(b.val)
		}
	}

	return p, nil
}

func newSettingsForm(v *formValues, darkTheme bool) *huh.Form {
	minutes := func(field string) func(string) error {
		return func(s string) error {
			_, err := settings.ParseMinutes(field, s)
			return err
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start with an essay?").
				Value(&v.withEssay),
			huh.NewInput().
				Title("Essay length (minutes)").
				Value(&v.essay).
				Validate(minutes(fieldEssay)),
			huh.NewInput().
				Title("Number of chapters").
				Value(&v.chapters).
				Validate(func(s string) error {
					_, err := settings.ParseCount(fieldChapters, s)
					return err
				}),
			huh.NewInput().
				Title("Chapter length (minutes)").
				Value(&v.chapter).
				Validate(minutes(fieldChapter)),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Announce the end of each phase?").
				Value(&v.notifyEnds),
			huh.NewConfirm().
				Title("Warn before a phase ends?").
				Value(&v.notifyWarning),
			huh.NewInput().
				Title("Warn this many minutes before the end").
				Value(&v.warn).
				Validate(minutes(fieldWarn)),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Restart the digits when the essay ends?").
				Value(&v.resetEssay),
			huh.NewConfirm().
				Title("Restart the digits when a chapter ends?").
				Value(&v.resetChapter),
			huh.NewConfirm().
				Title("Show progress of the current chapter only?").
				Value(&v.chapterPct),
		),
	).WithShowHelp(true)

	if !darkTheme {
		form = form.WithTheme(huh.ThemeBase())
	}

	return form
}
