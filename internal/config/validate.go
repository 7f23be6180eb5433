package config

import (
	"slices"
	"strings"
	"time"
)

var (
	// Sampling cadence bounds. The lower bound is one 60 fps frame.
	minInterval = 16 * time.Millisecond
	maxInterval = 10 * time.Second

	minVoiceRate = 0.1
	maxVoiceRate = 10.0

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Clock.Interval < minInterval || c.Clock.Interval > maxInterval {
		return errInvalidInterval.Fmt(minInterval, maxInterval, c.Clock.Interval)
	}

	if err := c.validateVoice(); err != nil {
		return err
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if !slices.Contains(logLevels, level) {
		return errUnknownLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateVoice() error {
	if c.Voice.Rate < minVoiceRate || c.Voice.Rate > maxVoiceRate {
		return errInvalidRate.Fmt(minVoiceRate, maxVoiceRate, c.Voice.Rate)
	}

	if c.Voice.Volume < 0 || c.Voice.Volume > 1 {
		return errInvalidVolume.Fmt(c.Voice.Volume)
	}

	return nil
}
