// Package app wires the proctor command line application
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the proctor app instance.
func Get() *cli.App {
	setFlags := append(timingFlags(),
		notifyEndsFlag,
		resetEssayFlag,
		resetChapterFlag,
		chapterProgressFlag,
	)

	runFlags := append(timingFlags(),
		muteFlag,
		noWakeFlag,
		intervalFlag,
		noColorFlag,
	)

	proctorApp := &cli.App{
		Name: "proctor",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Proctor is a countdown clock for timed exams. It runs an optional essay
		followed by a number of chapters and announces when each one is about
		to end.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "settings",
				Usage:  "Print the saved clock settings",
				Flags:  []cli.Flag{jsonFlag},
				Action: settingsAction,
				Subcommands: []*cli.Command{
					{
						Name:   "set",
						Usage:  "Change and save the clock settings",
						Flags:  setFlags,
						Action: settingsSetAction,
					},
					{
						Name:   "reset",
						Usage:  "Restore the default clock settings",
						Action: settingsResetAction,
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running clock",
				Action: statusAction,
			},
		},
		Flags:  runFlags,
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return proctorApp
}
