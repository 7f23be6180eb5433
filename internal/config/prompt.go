package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗ ██████╗  ██████╗  ██████╗████████╗ ██████╗ ██████╗
██╔══██╗██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗
██████╔╝██████╔╝██║   ██║██║        ██║   ██║   ██║██████╔╝
██╔═══╝ ██╔══██╗██║   ██║██║        ██║   ██║   ██║██╔══██╗
██║     ██║  ██║╚██████╔╝╚██████╗   ██║   ╚██████╔╝██║  ██║
╚═╝     ╚═╝  ╚═╝ ╚═════╝  ╚═════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝`

// PromptOptions holds the user's responses to the first run prompts.
type PromptOptions struct {
	Voice     bool
	Chime     bool
	Desktop   bool
	DarkTheme bool
}

// WithPromptConfig returns an Option that asks how announcements should be
// made when no config file exists yet. It does nothing when stdin is not a
// terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.firstRun = &opts

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Voice:     true,
		Chime:     true,
		DarkTheme: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure proctor for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'proctor edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Announce phases with a spoken voice?").
				Value(&opts.Voice),
			huh.NewConfirm().
				Title("Play a chime before announcements?").
				Value(&opts.Chime),
			huh.NewConfirm().
				Title("Show desktop notifications?").
				Value(&opts.Desktop),
			huh.NewConfirm().
				Title("Use a dark theme?").
				Value(&opts.DarkTheme),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}
