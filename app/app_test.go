package app

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/proctor/internal/config"
	"github.com/ayoisaiah/proctor/internal/testutil"
	"github.com/ayoisaiah/proctor/settings"
)

type settingsOutput struct {
	s      settings.ClockSettings
	golden string
}

func (o settingsOutput) Output() ([]byte, string) {
	var buf bytes.Buffer

	_ = printSettings(&buf, o.s, true)

	return buf.Bytes(), o.golden
}

type memSaver struct {
	err   error
	saved []settings.ClockSettings
}

func (m *memSaver) SaveSettings(s settings.ClockSettings) error {
	if m.err != nil {
		return m.err
	}

	m.saved = append(m.saved, s)

	return nil
}

func findCommand(t *testing.T, names ...string) *cli.Command {
	t.Helper()

	cmds := Get().Commands

	var found *cli.Command

	for _, name := range names {
		found = nil

		for _, c := range cmds {
			if c.Name == name {
				found = c
				break
			}
		}

		require.NotNil(t, found, "command %q", name)

		cmds = found.Subcommands
	}

	return found
}

func newSetContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("set", flag.ContinueOnError)

	for _, f := range findCommand(t, "settings", "set").Flags {
		require.NoError(t, f.Apply(set))
	}

	require.NoError(t, set.Parse(args))

	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestPrintSettingsJSON(t *testing.T) {
	testutil.CompareGoldenFile(t, settingsOutput{
		s:      settings.Default(),
		golden: "settings_default_json",
	})
}

func TestPrintSettingsTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printSettings(&buf, settings.Default(), false))

	out := buf.String()
	for _, want := range []string{"Essay length", "30 min", "Chapters", "8", "20 min", "3h10m0s"} {
		assert.Contains(t, out, want)
	}
}

func TestSettingsPatch(t *testing.T) {
	cases := []struct {
		want settings.Patch
		name string
		args []string
	}{
		{
			name: "no flags",
		},
		{
			name: "timing flags",
			args: []string{"--chapters", "4", "--no-essay"},
			want: settings.Patch{
				WithEssay:     settings.Ptr(false),
				ChaptersCount: settings.Ptr(4),
			},
		},
		{
			name: "display flags",
			args: []string{"--notify-ends=false", "--reset-essay-digits", "--chapter-progress=false"},
			want: settings.Patch{
				NotifyEnds:            settings.Ptr(false),
				ResetVisualClockEssay: settings.Ptr(true),
				ChapterPercent:        settings.Ptr(false),
			},
		},
		{
			name: "warning lead time",
			args: []string{"-w", "2.5"},
			want: settings.Patch{
				SecondsLeftCount:  settings.Ptr(150.0),
				NotifyMinutesLeft: settings.Ptr(true),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := settingsPatch(newSetContext(t, tc.args...))
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("patch mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettingsPatchRejectsInput(t *testing.T) {
	_, err := settingsPatch(newSetContext(t, "--chapter", "soon"))
	require.Error(t, err)

	_, err = settingsPatch(newSetContext(t, "--essay", "10", "--no-essay"))
	require.Error(t, err)
}

func TestApplyPatch(t *testing.T) {
	saver := &memSaver{}

	got, err := applyPatch(saver, settings.Default(), settings.Patch{
		ChaptersCount:         settings.Ptr(2),
		ResetVisualClockEssay: settings.Ptr(false),
	})
	require.NoError(t, err)

	want := settings.Default()
	want.ChaptersCount = 2
	want.ResetVisualClockEssay = false
	want.ResetVisualClockChapter = false

	assert.Equal(t, want, got)
	require.Len(t, saver.saved, 1)
	assert.Equal(t, want, saver.saved[0])
}

func TestApplyPatchSaveFailure(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}

	_, err := applyPatch(saver, settings.Default(), settings.Patch{
		ChaptersCount: settings.Ptr(2),
	})

	require.Error(t, err)
}

func TestFlagNamesMatchConfig(t *testing.T) {
	names := map[string]bool{}

	for _, f := range Get().Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}

	for _, want := range []string{
		config.FlagEssay,
		config.FlagNoEssay,
		config.FlagChapters,
		config.FlagChapter,
		config.FlagWarn,
		config.FlagMute,
		config.FlagNoWake,
		config.FlagInterval,
		config.FlagNoColor,
	} {
		assert.True(t, names[want], "missing --%s", want)
	}
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}
