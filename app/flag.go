package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/internal/config"
)

const (
	flagJSON          = "json"
	flagNotifyEnds    = "notify-ends"
	flagResetEssay    = "reset-essay-digits"
	flagResetChapter  = "reset-chapter-digits"
	flagChapterPctBar = "chapter-progress"
)

var (
	essayFlag = &cli.StringFlag{
		Name:  config.FlagEssay,
		Usage: "Length of the essay in minutes. Enables the essay",
	}

	noEssayFlag = &cli.BoolFlag{
		Name:  config.FlagNoEssay,
		Usage: "Skip the essay and start with the first chapter",
	}

	chaptersFlag = &cli.StringFlag{
		Name:    config.FlagChapters,
		Aliases: []string{"n"},
		Usage:   "Number of chapters in the session",
	}

	chapterFlag = &cli.StringFlag{
		Name:    config.FlagChapter,
		Aliases: []string{"c"},
		Usage:   "Length of each chapter in minutes",
	}

	warnFlag = &cli.StringFlag{
		Name:    config.FlagWarn,
		Aliases: []string{"w"},
		Usage:   "Announce the time left this many minutes before a phase ends. Set to 0 to disable",
	}

	muteFlag = &cli.BoolFlag{
		Name:  config.FlagMute,
		Usage: "Start with all announcements muted",
	}

	noWakeFlag = &cli.BoolFlag{
		Name:  config.FlagNoWake,
		Usage: "Allow the screen to sleep while the clock runs",
	}

	intervalFlag = &cli.DurationFlag{
		Name:  config.FlagInterval,
		Usage: "How often the display is refreshed (e.g. 250ms)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  config.FlagNoColor,
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  flagJSON,
		Usage: "Print the settings as JSON",
	}

	notifyEndsFlag = &cli.BoolFlag{
		Name:  flagNotifyEnds,
		Usage: "Announce the end of each phase (use --notify-ends=false to disable)",
	}

	resetEssayFlag = &cli.BoolFlag{
		Name:  flagResetEssay,
		Usage: "Restart the digits when the essay ends. Also sets --" + flagResetChapter,
	}

	resetChapterFlag = &cli.BoolFlag{
		Name:  flagResetChapter,
		Usage: "Restart the digits when a chapter ends",
	}

	chapterProgressFlag = &cli.BoolFlag{
		Name:  flagChapterPctBar,
		Usage: "Show the progress of the current chapter instead of the whole session",
	}
)

// timingFlags are accepted by both the default action and `settings set`.
func timingFlags() []cli.Flag {
	return []cli.Flag{
		essayFlag,
		noEssayFlag,
		chaptersFlag,
		chapterFlag,
		warnFlag,
	}
}
