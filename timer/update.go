package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/proctor/clock"
)

// toggle starts a session from Off or Done, stops a running one and
// continues a stopped one.
func (t *Timer) toggle() {
	switch t.clock.Mode() {
	case clock.Off, clock.Done:
		t.err = nil
		t.clock.Start()
		t.updater.Activate()
		t.record(t.updater.State())
	case clock.On:
		// the last sample before stopping shows the exact stop time
		t.updater.Now()
		t.clock.Stop()
		t.updater.Deactivate()
		t.record(t.clock.View())
	case clock.Paused:
		t.clock.Continue()
		t.updater.Activate()
		t.record(t.updater.State())
	}
}

func (t *Timer) reset() {
	t.clock.Reset()
	t.updater.Deactivate()
	t.record(t.clock.View())
}

func (t *Timer) toggleMute() {
	t.muted = !t.muted

	if t.muted {
		t.clock.Mute()
		return
	}

	t.clock.Unmute()
}

func (t *Timer) openSettings() tea.Cmd {
	mode := t.clock.Mode()
	if mode != clock.Off && mode != clock.Done {
		return nil
	}

	t.values = newFormValues(t.clock.Settings())
	t.form = newSettingsForm(t.values, t.opts.DarkTheme)

	return t.form.Init()
}

// applySettings hands the submitted form to the clock. The form is closed
// whether or not the update succeeds.
func (t *Timer) applySettings() {
	values := t.values
	t.form, t.values = nil, nil

	p, err := values.patch(t.clock.Settings())
	if err == nil && !p.IsEmpty() {
		err = t.clock.SetSettings(p)
	}

	if err != nil {
		t.err = errApplySettings.Wrap(err)
		return
	}

	t.err = nil
	t.record(t.clock.View())
}

func (t *Timer) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		t.Close()
		return t, tea.Quit
	}

	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.logger.Debug(spew.Sdump(msg))
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		t.applySettings()
		return t, nil
	case huh.StateAborted:
		t.form, t.values = nil, nil
		return t, nil
	}

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.toggle):
		t.toggle()
	case key.Matches(msg, t.keys.reset):
		t.reset()
	case key.Matches(msg, t.keys.settings):
		return t, t.openSettings()
	case key.Matches(msg, t.keys.mute):
		t.toggleMute()
	case key.Matches(msg, t.keys.help):
		t.help.ShowAll = !t.help.ShowAll
	case key.Matches(msg, t.keys.quit):
		t.Close()
		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

// Update implements tea.Model.
func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sampleMsg:
		v := clock.View(msg)

		// drop samples taken just before a stop or reset
		if v.Mode == clock.On && t.clock.Mode() != clock.On {
			return t, t.waitForSample()
		}

		t.record(v)

		return t, t.waitForSample()

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		t.help.Width = msg.Width

		if t.form != nil {
			t.form = t.form.WithWidth(min(msg.Width-padding*2, maxWidth))
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	if t.form != nil {
		return t.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return t.handleKeyPress(msg)
	}

	return t, nil
}
