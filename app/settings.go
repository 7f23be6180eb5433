package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/clock"
	"github.com/ayoisaiah/proctor/internal/config"
	"github.com/ayoisaiah/proctor/internal/pathutil"
	"github.com/ayoisaiah/proctor/internal/ui"
	"github.com/ayoisaiah/proctor/report"
	"github.com/ayoisaiah/proctor/settings"
	"github.com/ayoisaiah/proctor/store"
)

// settingsPatch combines the timing flags with the flags that only
// `settings set` accepts.
func settingsPatch(ctx *cli.Context) (settings.Patch, error) {
	p, err := config.PatchFromFlags(ctx)
	if err != nil {
		return p, err
	}

	bools := []struct {
		dst  **bool
		name string
	}{
		{&p.NotifyEnds, flagNotifyEnds},
		{&p.ResetVisualClockEssay, flagResetEssay},
		{&p.ResetVisualClockChapter, flagResetChapter},
		{&p.ChapterPercent, flagChapterPctBar},
	}

	for _, b := range bools {
		if ctx.IsSet(b.name) {
			*b.dst = settings.Ptr(ctx.Bool(b.name))
		}
	}

	return p, nil
}

// printSettings writes s to w as a table, or as indented JSON.
func printSettings(w io.Writer, s settings.ClockSettings, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, string(b))

		return err
	}

	data := [][]string{
		{"Setting", "Value"},
		{"Essay", ui.OnOff(s.WithEssay)},
		{"Essay length", ui.Cyan(settings.FormatMinutes(s.EssaySeconds)+" min")},
		{"Chapters", ui.Cyan(strconv.Itoa(s.ChaptersCount))},
		{"Chapter length", ui.Cyan(settings.FormatMinutes(s.ChapterSeconds)+" min")},
		{"Session length", ui.Highlight(s.Total().String())},
		{"Announce phase ends", ui.OnOff(s.NotifyEnds)},
		{"Warn before phase ends", ui.OnOff(s.NotifyMinutesLeft)},
		{"Warning lead time", ui.Cyan(settings.FormatMinutes(s.SecondsLeftCount)+" min")},
		{"Restart digits after essay", ui.OnOff(s.ResetVisualClockEssay)},
		{"Restart digits after chapter", ui.OnOff(s.ResetVisualClockChapter)},
		{"Chapter progress bar", ui.OnOff(s.ChapterPercent)},
	}

	return ui.PrintTable(data, w)
}

func openStore() (*store.Client, settings.ClockSettings, error) {
	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, settings.ClockSettings{}, err
	}

	s, err := client.LoadOrInit()
	if err != nil {
		_ = client.Close()
		return nil, settings.ClockSettings{}, err
	}

	return client, s, nil
}

// settingsAction prints the persisted settings.
func settingsAction(ctx *cli.Context) error {
	client, s, err := openStore()
	if err != nil {
		return err
	}

	defer client.Close()

	return printSettings(ctx.App.Writer, s, ctx.Bool(flagJSON))
}

// applyPatch runs p through a stopped clock so that the same validation and
// normalisation rules apply as in the terminal UI. The result is saved to db.
func applyPatch(
	db clock.SettingsSaver,
	current settings.ClockSettings,
	p settings.Patch,
) (settings.ClockSettings, error) {
	c := clock.New(
		clock.WithSettings(current),
		clock.WithSettingsSaver(db),
	)

	err := c.SetSettings(p)
	if err != nil {
		return current, err
	}

	return c.Settings(), nil
}

// settingsSetAction persists the settings given as flags.
func settingsSetAction(ctx *cli.Context) error {
	p, err := settingsPatch(ctx)
	if err != nil {
		return err
	}

	if p.IsEmpty() {
		return errNothingToSet
	}

	client, s, err := openStore()
	if err != nil {
		return err
	}

	defer client.Close()

	s, err = applyPatch(client, s, p)
	if err != nil {
		return err
	}

	report.SettingsSaved()

	return printSettings(ctx.App.Writer, s, false)
}

// settingsResetAction overwrites the persisted settings with the defaults.
func settingsResetAction(ctx *cli.Context) error {
	client, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer client.Close()

	err = client.SaveSettings(settings.Default())
	if err != nil {
		return err
	}

	report.SettingsReset()

	return printSettings(ctx.App.Writer, settings.Default(), false)
}
