// Package config loads the proctor configuration file and layers command
// line overrides on top of it
package config

import (
	"errors"
	"time"

	"github.com/ayoisaiah/proctor/settings"
)

type (
	// Config holds all configuration settings
	Config struct {
		firstRun      *PromptOptions
		Log           LogConfig          `mapstructure:"log"`
		Voice         VoiceConfig        `mapstructure:"voice"`
		Waker         WakerConfig        `mapstructure:"waker"`
		CLI           CLIConfig          `mapstructure:"-"`
		Clock         ClockConfig        `mapstructure:"clock"`
		Chime         ChimeConfig        `mapstructure:"chime"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// ClockConfig holds the sampling cadence of the display
	ClockConfig struct {
		Interval time.Duration `mapstructure:"interval"`
	}

	// VoiceConfig holds the spoken announcement settings
	VoiceConfig struct {
		Command string  `mapstructure:"command"`
		Lang    string  `mapstructure:"lang"`
		Rate    float64 `mapstructure:"rate"`
		Volume  float64 `mapstructure:"volume"`
		Enabled bool    `mapstructure:"enabled"`
	}

	// ChimeConfig holds the alert tone settings
	ChimeConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// NotificationConfig holds desktop notification settings
	NotificationConfig struct {
		Desktop bool `mapstructure:"desktop"`
	}

	// WakerConfig holds the screen inhibitor settings
	WakerConfig struct {
		Command string `mapstructure:"command"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		ShowReset      bool `mapstructure:"show_reset"`
		TwentyFourHour bool `mapstructure:"twenty_four_hour"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds overrides that only apply to the current run
	CLIConfig struct {
		Patch   settings.Patch
		Muted   bool
		NoColor bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

// New creates a new Config, applies options and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			if errors.Is(err, errConfigValidation) {
				return nil, err
			}

			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
