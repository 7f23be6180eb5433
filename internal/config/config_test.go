package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/settings"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *Config {
	return &Config{
		Clock: ClockConfig{
			Interval: 500 * time.Millisecond,
		},
		Voice: VoiceConfig{
			Enabled: true,
			Lang:    "en-US",
			Rate:    1.3,
			Volume:  1,
		},
		Chime: ChimeConfig{
			Enabled: true,
		},
		Waker: WakerConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
			ShowReset: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "proctor", "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfig(), cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(configPath)
	require.NoError(t, err, "default config file should be written")

	reloaded, err := New(WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	content := `clock:
  interval: 1s
voice:
  rate: 2
  command: spd-say
display:
  show_reset: false
`

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := defaultConfig()
	want.Clock.Interval = time.Second
	want.Voice.Rate = 2
	want.Voice.Command = "spd-say"
	want.Display.ShowReset = false

	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		modify func(c *Config)
		want   error
		name   string
	}{
		{
			name:   "defaults",
			modify: func(_ *Config) {},
		},
		{
			name:   "interval too short",
			modify: func(c *Config) { c.Clock.Interval = time.Millisecond },
			want:   errInvalidInterval,
		},
		{
			name:   "interval too long",
			modify: func(c *Config) { c.Clock.Interval = time.Minute },
			want:   errInvalidInterval,
		},
		{
			name:   "zero rate",
			modify: func(c *Config) { c.Voice.Rate = 0 },
			want:   errInvalidRate,
		},
		{
			name:   "loud volume",
			modify: func(c *Config) { c.Voice.Volume = 1.5 },
			want:   errInvalidVolume,
		},
		{
			name:   "log level",
			modify: func(c *Config) { c.Log.Level = "verbose" },
			want:   errUnknownLogLevel,
		},
		{
			name:   "log level case",
			modify: func(c *Config) { c.Log.Level = "DEBUG" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewRejectsInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(configPath, []byte("voice:\n  volume: 3\n"), 0o600))

	_, err := New(WithViperConfig(configPath))

	assert.ErrorIs(t, err, errConfigValidation)
	assert.ErrorIs(t, err, errInvalidVolume)
}

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("proctor", flag.ContinueOnError)
	set.String(FlagEssay, "", "")
	set.Bool(FlagNoEssay, false, "")
	set.String(FlagChapters, "", "")
	set.String(FlagChapter, "", "")
	set.String(FlagWarn, "", "")
	set.Bool(FlagMute, false, "")
	set.Bool(FlagNoWake, false, "")
	set.Duration(FlagInterval, 0, "")
	set.Bool(FlagNoColor, false, "")

	require.NoError(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestPatchFromFlags(t *testing.T) {
	cases := []struct {
		want settings.Patch
		name string
		args []string
	}{
		{
			name: "no flags",
		},
		{
			name: "essay length enables the essay",
			args: []string{"--essay", "45"},
			want: settings.Patch{
				WithEssay:    settings.Ptr(true),
				EssaySeconds: settings.Ptr(2700.0),
			},
		},
		{
			name: "no essay",
			args: []string{"--no-essay"},
			want: settings.Patch{WithEssay: settings.Ptr(false)},
		},
		{
			name: "chapters",
			args: []string{"--chapters", "4", "--chapter", "12.5"},
			want: settings.Patch{
				ChaptersCount:  settings.Ptr(4),
				ChapterSeconds: settings.Ptr(750.0),
			},
		},
		{
			name: "zero warning disables it",
			args: []string{"--warn", "0"},
			want: settings.Patch{
				SecondsLeftCount:  settings.Ptr(0.0),
				NotifyMinutesLeft: settings.Ptr(false),
			},
		},
		{
			name: "warning",
			args: []string{"--warn", "2"},
			want: settings.Patch{
				SecondsLeftCount:  settings.Ptr(120.0),
				NotifyMinutesLeft: settings.Ptr(true),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PatchFromFlags(newContext(t, tc.args...))
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("patch mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatchFromFlagsErrors(t *testing.T) {
	_, err := PatchFromFlags(newContext(t, "--essay", "10", "--no-essay"))
	assert.ErrorIs(t, err, errEssayConflict)

	_, err = PatchFromFlags(newContext(t, "--chapter", "soon"))
	assert.ErrorIs(t, err, errInvalidFlag)

	_, err = PatchFromFlags(newContext(t, "--chapters", "-1"))
	assert.ErrorIs(t, err, errInvalidFlag)
}

func TestWithCLIConfig(t *testing.T) {
	cfg := defaultConfig()

	ctx := newContext(t, "--mute", "--no-wake", "--interval", "250ms", "--no-color")

	require.NoError(t, WithCLIConfig(ctx)(cfg))

	assert.True(t, cfg.CLI.Muted)
	assert.True(t, cfg.CLI.NoColor)
	assert.False(t, cfg.Waker.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Clock.Interval)
	assert.True(t, cfg.CLI.Patch.IsEmpty())
}
