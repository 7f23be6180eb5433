package settings

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhases(t *testing.T) {
	s := Default()

	phases := s.Phases()

	require.Len(t, phases, 9)
	assert.Equal(t, 30*time.Minute, phases[0])

	for _, d := range phases[1:] {
		assert.Equal(t, 20*time.Minute, d)
	}

	assert.Equal(t, 30*time.Minute+8*20*time.Minute, s.Total())
	assert.Equal(t, 9, s.PhaseCount())

	s.WithEssay = false

	assert.Len(t, s.Phases(), 8)
	assert.Equal(t, 160*time.Minute, s.Total())
}

func TestPhasesNegativeCount(t *testing.T) {
	s := ClockSettings{ChaptersCount: -2, ChapterSeconds: 60}

	assert.Empty(t, s.Phases())
	assert.Zero(t, s.Total())
}

func TestApply(t *testing.T) {
	cases := []struct {
		name  string
		patch Patch
		want  func(s *ClockSettings)
	}{
		{
			name:  "empty patch",
			patch: Patch{},
			want:  func(_ *ClockSettings) {},
		},
		{
			name:  "plain field",
			patch: Patch{ChaptersCount: Ptr(4)},
			want: func(s *ClockSettings) {
				s.ChaptersCount = 4
			},
		},
		{
			name:  "essay reset off turns chapter reset off",
			patch: Patch{ResetVisualClockEssay: Ptr(false)},
			want: func(s *ClockSettings) {
				s.ResetVisualClockEssay = false
				s.ResetVisualClockChapter = false
			},
		},
		{
			name:  "chapter reset alone is left untouched",
			patch: Patch{ResetVisualClockChapter: Ptr(false)},
			want: func(s *ClockSettings) {
				s.ResetVisualClockChapter = false
			},
		},
		{
			name:  "lead time longer than a chapter disables the warning",
			patch: Patch{ChapterSeconds: Ptr(60.0)},
			want: func(s *ClockSettings) {
				s.ChapterSeconds = 60
				s.NotifyMinutesLeft = false
			},
		},
		{
			name: "explicit warning is still disabled when inconsistent",
			patch: Patch{
				SecondsLeftCount:  Ptr(3600.0),
				NotifyMinutesLeft: Ptr(true),
			},
			want: func(s *ClockSettings) {
				s.SecondsLeftCount = 3600
				s.NotifyMinutesLeft = false
			},
		},
		{
			name:  "disabled essay is ignored by the lead time check",
			patch: Patch{WithEssay: Ptr(false), EssaySeconds: Ptr(30.0)},
			want: func(s *ClockSettings) {
				s.WithEssay = false
				s.EssaySeconds = 30
			},
		},
		{
			name:  "non timing field does not re-check lead time",
			patch: Patch{NotifyEnds: Ptr(false)},
			want: func(s *ClockSettings) {
				s.NotifyEnds = false
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := Default()
			tc.want(&want)

			got := Default().Apply(tc.patch)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyReEnabledWarningChecksLeadTime(t *testing.T) {
	s := Default()
	s.ChapterSeconds = 60
	s.NotifyMinutesLeft = false

	got := s.Apply(Patch{NotifyMinutesLeft: Ptr(true)})
	assert.False(t, got.NotifyMinutesLeft, "lead time of 5 minutes exceeds a 1 minute chapter")

	s.ChapterSeconds = 1200

	got = s.Apply(Patch{NotifyMinutesLeft: Ptr(true)})
	assert.True(t, got.NotifyMinutesLeft)
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	s := Default()

	_ = s.Apply(Patch{ChaptersCount: Ptr(1), WithEssay: Ptr(false)})

	assert.Equal(t, Default(), s)
}

func TestAffectsTiming(t *testing.T) {
	assert.False(t, Patch{}.AffectsTiming())
	assert.False(t, Patch{NotifyEnds: Ptr(true), ChapterPercent: Ptr(false)}.AffectsTiming())
	assert.True(t, Patch{WithEssay: Ptr(true)}.AffectsTiming())
	assert.True(t, Patch{EssaySeconds: Ptr(1.0)}.AffectsTiming())
	assert.True(t, Patch{ChapterSeconds: Ptr(1.0)}.AffectsTiming())
	assert.True(t, Patch{SecondsLeftCount: Ptr(1.0)}.AffectsTiming())
	assert.True(t, Patch{ChaptersCount: Ptr(1)}.AffectsTiming())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Patch{}.Validate())
	assert.NoError(t, Patch{ChapterSeconds: Ptr(0.0), ChaptersCount: Ptr(0)}.Validate())

	assert.ErrorIs(t, Patch{EssaySeconds: Ptr(math.NaN())}.Validate(), errNotFinite)
	assert.ErrorIs(t, Patch{ChapterSeconds: Ptr(math.Inf(1))}.Validate(), errNotFinite)
	assert.ErrorIs(t, Patch{SecondsLeftCount: Ptr(-1.0)}.Validate(), errNegative)
	assert.ErrorIs(t, Patch{ChaptersCount: Ptr(-1)}.Validate(), errNegative)
}

func TestParseMinutes(t *testing.T) {
	secs, err := ParseMinutes("chapter length", " 20 ")
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, secs, 1e-9)

	secs, err = ParseMinutes("chapter length", "0.5")
	require.NoError(t, err)
	assert.InDelta(t, 30.0, secs, 1e-9)

	_, err = ParseMinutes("chapter length", "NaN")
	assert.ErrorIs(t, err, errNotFinite)

	_, err = ParseMinutes("chapter length", "")
	assert.ErrorIs(t, err, errNotANumber)

	_, err = ParseMinutes("chapter length", "-3")
	assert.ErrorIs(t, err, errNegative)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "30", FormatMinutes(1800))
	assert.Equal(t, "0.5", FormatMinutes(30))
	assert.Equal(t, "2.25", FormatMinutes(135))

	secs, err := ParseMinutes("essay length", FormatMinutes(135))
	require.NoError(t, err)
	assert.InDelta(t, 135.0, secs, 1e-9)
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("chapters", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	_, err = ParseCount("chapters", "eight")
	assert.ErrorIs(t, err, errNotANumber)

	_, err = ParseCount("chapters", "-1")
	assert.ErrorIs(t, err, errNegative)
}
