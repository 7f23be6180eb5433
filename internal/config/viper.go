package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/proctor/internal/osutil"
)

const (
	keyClockInterval        = "clock.interval"
	keyVoiceEnabled         = "voice.enabled"
	keyVoiceCommand         = "voice.command"
	keyVoiceLang            = "voice.lang"
	keyVoiceRate            = "voice.rate"
	keyVoiceVolume          = "voice.volume"
	keyChimeEnabled         = "chime.enabled"
	keyNotificationsDesktop = "notifications.desktop"
	keyWakerEnabled         = "waker.enabled"
	keyWakerCommand         = "waker.command"
	keyDarkTheme            = "display.dark_theme"
	keyShowReset            = "display.show_reset"
	keyTwentyFourHour       = "display.twenty_four_hour"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath. A missing file is created with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and first run answers.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyClockInterval, "500ms")
	v.SetDefault(keyVoiceEnabled, true)
	v.SetDefault(keyVoiceCommand, "")
	v.SetDefault(keyVoiceLang, "en-US")
	v.SetDefault(keyVoiceRate, 1.3)
	v.SetDefault(keyVoiceVolume, 1.0)
	v.SetDefault(keyChimeEnabled, true)
	v.SetDefault(keyNotificationsDesktop, false)
	v.SetDefault(keyWakerEnabled, true)
	v.SetDefault(keyWakerCommand, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyShowReset, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")

	if c.firstRun != nil {
		v.Set(keyVoiceEnabled, c.firstRun.Voice)
		v.Set(keyChimeEnabled, c.firstRun.Chime)
		v.Set(keyNotificationsDesktop, c.firstRun.Desktop)
		v.Set(keyDarkTheme, c.firstRun.DarkTheme)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}
