package config

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/settings"
)

// Flag names shared with the app package.
const (
	FlagEssay    = "essay"
	FlagNoEssay  = "no-essay"
	FlagChapters = "chapters"
	FlagChapter  = "chapter"
	FlagWarn     = "warn"
	FlagMute     = "mute"
	FlagNoWake   = "no-wake"
	FlagInterval = "interval"
	FlagNoColor  = "no-color"
)

// WithCLIConfig returns an Option that applies command line overrides. Only
// flags that were explicitly set take effect.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		patch, err := PatchFromFlags(ctx)
		if err != nil {
			return err
		}

		c.CLI.Patch = patch
		c.CLI.Muted = ctx.Bool(FlagMute)
		c.CLI.NoColor = ctx.Bool(FlagNoColor)

		if ctx.Bool(FlagNoWake) {
			c.Waker.Enabled = false
		}

		if ctx.IsSet(FlagInterval) {
			c.Clock.Interval = ctx.Duration(FlagInterval)
		}

		return nil
	}
}

// PatchFromFlags builds a settings patch from the timing flags on ctx.
func PatchFromFlags(ctx *cli.Context) (settings.Patch, error) {
	var p settings.Patch

	if ctx.IsSet(FlagEssay) && ctx.Bool(FlagNoEssay) {
		return p, errEssayConflict
	}

	minutes := []struct {
		dst  **float64
		name string
		desc string
	}{
		{&p.EssaySeconds, FlagEssay, "essay length"},
		{&p.ChapterSeconds, FlagChapter, "chapter length"},
		{&p.SecondsLeftCount, FlagWarn, "warning lead time"},
	}

	for _, m := range minutes {
		if !ctx.IsSet(m.name) {
			continue
		}

		secs, err := settings.ParseMinutes(m.desc, ctx.String(m.name))
		if err != nil {
			return p, errInvalidFlag.Fmt(m.name).Wrap(err)
		}

		*m.dst = settings.Ptr(secs)
	}

	if p.EssaySeconds != nil {
		p.WithEssay = settings.Ptr(true)
	}

	if ctx.Bool(FlagNoEssay) {
		p.WithEssay = settings.Ptr(false)
	}

	if p.SecondsLeftCount != nil {
		p.NotifyMinutesLeft = settings.Ptr(*p.SecondsLeftCount > 0)
	}

	if ctx.IsSet(FlagChapters) {
		n, err := settings.ParseCount("chapter count", ctx.String(FlagChapters))
		if err != nil {
			return p, errInvalidFlag.Fmt(FlagChapters).Wrap(err)
		}

		p.ChaptersCount = settings.Ptr(n)
	}

	return p, nil
}
