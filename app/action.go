package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/clock"
	"github.com/ayoisaiah/proctor/internal/config"
	"github.com/ayoisaiah/proctor/internal/logging"
	"github.com/ayoisaiah/proctor/internal/osutil"
	"github.com/ayoisaiah/proctor/internal/pathutil"
	"github.com/ayoisaiah/proctor/internal/ui"
	"github.com/ayoisaiah/proctor/timer"
)

const (
	envUpdateNotifier = "PROCTOR_UPDATE_NOTIFIER"
	envNoColor        = "NO_COLOR"
	envProctorNoColor = "PROCTOR_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// checkForUpdates alerts the user if there is
// an updated version of proctor from the one currently installed.
func checkForUpdates(app *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")
	c := http.Client{Timeout: 10 * time.Second}

	resp, err := c.Get("https://github.com/ayoisaiah/proctor/releases/latest")
	if err != nil {
		pterm.Error.Println("HTTP Error: Failed to check for update")
		return
	}

	defer resp.Body.Close()

	var version string

	_, err = fmt.Sscanf(
		resp.Request.URL.String(),
		"https://github.com/ayoisaiah/proctor/releases/tag/%s",
		&version,
	)
	if err != nil {
		pterm.Error.Println("Failed to get latest version")
		return
	}

	if version == app.Version {
		text := pterm.Sprintf(
			"Congratulations, you are using the latest version of %s",
			app.Name,
		)
		spinner.Success(text)
	} else {
		pterm.Warning.Prefix = pterm.Prefix{
			Text:  "UPDATE AVAILABLE",
			Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
		}
		pterm.Warning.Printfln("A new release of proctor is available: %s at %s", version, resp.Request.URL.String())
	}
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithPromptConfig(pathutil.ConfigFilePath()),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// editConfigAction handles the edit-config command which opens the proctor
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// make sure the file exists before the editor opens it
	_, err := config.New(config.WithViperConfig(pathutil.ConfigFilePath()))
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction handles the status command and prints the status of the
// clock running in another terminal.
func statusAction(ctx *cli.Context) error {
	return timer.ReportStatus(
		ctx.App.Writer,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

// defaultAction runs the clock screen. Flags override the persisted settings
// for this run only.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(pathutil.LogFilePath(), cfg.Log.Level)
	if err != nil {
		return err
	}

	defer logFile.Close()

	logger := slog.Default()

	client, s, err := openStore()
	if err != nil {
		return err
	}

	defer client.Close()

	ui.DarkTheme = cfg.Display.DarkTheme

	opts := []clock.Option{
		clock.WithSettings(s.Apply(cfg.CLI.Patch)),
		clock.WithSettingsSaver(client),
		clock.WithNotifier(newNotifier(cfg, logger)),
		clock.WithLogger(logger),
	}

	if w := newScreenWaker(cfg, logger); w != nil {
		opts = append(opts, clock.WithScreenWaker(w))
	}

	c := clock.New(opts...)

	t := timer.New(c, timer.Options{
		Logger:         logger,
		StatusFilePath: pathutil.StatusFilePath(),
		Interval:       cfg.Clock.Interval,
		DarkTheme:      cfg.Display.DarkTheme,
		ShowReset:      cfg.Display.ShowReset,
		TwentyFourHour: cfg.Display.TwentyFourHour,
		Muted:          cfg.CLI.Muted,
	})

	// release the screen lock even if the program fails
	defer t.Close()

	logger.InfoContext(ctx.Context, "starting proctor",
		slog.Any("settings", c.Settings()),
		slog.Duration("interval", cfg.Clock.Interval),
	)

	p := tea.NewProgram(t, tea.WithContext(ctx.Context))

	_, err = p.Run()
	if err != nil {
		return errRunUI.Wrap(err)
	}

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/proctor/releases/%s\n",
			c.App.Version,
		)

		if _, found := os.LookupEnv(envUpdateNotifier); found {
			checkForUpdates(c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PROCTOR_NO_COLOR is set
	if _, exists := os.LookupEnv(envProctorNoColor); exists {
		disableStyling()
	}

	if ctx.Bool(config.FlagNoColor) {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting proctor")

	return nil
}
