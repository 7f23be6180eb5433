package timer

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/proctor/clock"
)

// phaseLabel names the phase a view refers to.
func phaseLabel(v clock.View, chaptersCount int) string {
	switch {
	case v.Mode == clock.Done:
		return "Time's up"
	case v.InEssay:
		return "Essay"
	case chaptersCount <= 0:
		return "Ready"
	case v.Mode == clock.Off:
		return fmt.Sprintf("%d chapters", chaptersCount)
	default:
		return fmt.Sprintf("Chapter %d of %d", v.ChapterIndex, chaptersCount)
	}
}

// formatDigits returns the clock digits as "MM:SS", or "H:MM:SS" once an hour
// has elapsed.
func formatDigits(v clock.View) string {
	if v.Hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", v.Hours, v.Minutes, v.Seconds)
	}

	return fmt.Sprintf("%02d:%02d", v.Minutes, v.Seconds)
}

// endTime estimates when the session ends if it is not stopped again.
func (t *Timer) endTime() time.Time {
	remaining := t.clock.Settings().Total() - t.clock.Elapsed()
	return t.now().Add(max(remaining, 0))
}

func (t *Timer) hintView() string {
	switch t.view.Mode {
	case clock.Paused:
		return t.style.paused.Render("[Paused]")
	case clock.Off:
		return t.style.hint.Render("press e to start")
	case clock.Done:
		return t.style.hint.Render("press e to start over")
	}

	timeFormat := "03:04:05 PM"
	if t.opts.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	hint := "until " + t.endTime().Format(timeFormat)

	if t.muted {
		hint += " (muted)"
	}

	return t.style.hint.Render(hint)
}

func (t *Timer) clockView() string {
	var s strings.Builder

	label := phaseLabel(t.view, t.clock.Settings().ChaptersCount)

	if t.view.Mode == clock.Done {
		s.WriteString(t.style.done.Render(label))
	} else {
		s.WriteString(t.style.phase.Render(label))
	}

	s.WriteString(t.hintView())
	s.WriteString("\n\n")
	s.WriteString(t.style.digits.Render(formatDigits(t.view)))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.view.Percent / 100))
	s.WriteString("\n")

	if t.err != nil {
		s.WriteString("\n" + t.style.errorText.Render(t.err.Error()) + "\n")
	}

	s.WriteString("\n" + t.helpView())

	return s.String()
}

func (t *Timer) helpView() string {
	if t.help.ShowAll {
		return t.help.FullHelpView(t.keys.FullHelp())
	}

	bindings := []key.Binding{t.keys.toggle}

	if t.keys.reset.Enabled() {
		bindings = append(bindings, t.keys.reset)
	}

	if t.view.Mode == clock.Off || t.view.Mode == clock.Done {
		bindings = append(bindings, t.keys.settings)
	}

	bindings = append(bindings, t.keys.help, t.keys.quit)

	return t.help.ShortHelpView(bindings)
}

// View implements tea.Model.
func (t *Timer) View() string {
	if t.form != nil {
		return t.style.base.Render(t.form.View())
	}

	return t.style.base.Render(t.clockView())
}
