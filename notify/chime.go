package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate beep.SampleRate = 44100

const (
	speakerUntried = iota
	speakerReady
	speakerFailed
)

var (
	speakerMu    sync.Mutex
	speakerState = speakerUntried
)

// tone is a single beep of a chime pattern followed by a pause.
type tone struct {
	freq  float64
	dur   time.Duration
	pause time.Duration
}

var (
	warningPattern = []tone{
		{freq: 660, dur: 180 * time.Millisecond},
	}

	chapterPattern = []tone{
		{freq: 660, dur: 150 * time.Millisecond, pause: 80 * time.Millisecond},
		{freq: 880, dur: 220 * time.Millisecond},
	}

	endPattern = []tone{
		{freq: 880, dur: 200 * time.Millisecond, pause: 80 * time.Millisecond},
		{freq: 660, dur: 200 * time.Millisecond, pause: 80 * time.Millisecond},
		{freq: 440, dur: 400 * time.Millisecond},
	}
)

// Chime plays a short tone pattern for warnings, chapter ends and the end
// of the session.
type Chime struct {
	logger *slog.Logger
	play   func(pattern []tone)
	mu     sync.Mutex
	muted  bool
}

// NewChime returns a Chime playing through the system speaker.
func NewChime(logger *slog.Logger) *Chime {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Chime{logger: logger}
	c.play = c.playSpeaker

	return c
}

func (c *Chime) Start()    {}
func (c *Chime) Continue() {}

func (c *Chime) MinutesLeft(float64) {
	c.ring(warningPattern)
}

func (c *Chime) NextChapter() {
	c.ring(chapterPattern)
}

func (c *Chime) End() {
	c.ring(endPattern)
}

// Cancel stops any pattern still playing.
func (c *Chime) Cancel() {
	speakerMu.Lock()
	ready := speakerState == speakerReady
	speakerMu.Unlock()

	if ready {
		speaker.Clear()
	}
}

func (c *Chime) Mute() {
	c.mu.Lock()
	c.muted = true
	c.mu.Unlock()

	c.Cancel()
}

func (c *Chime) Unmute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = false
}

func (c *Chime) ring(pattern []tone) {
	c.mu.Lock()
	muted := c.muted
	c.mu.Unlock()

	if muted {
		return
	}

	c.play(pattern)
}

func (c *Chime) playSpeaker(pattern []tone) {
	if !c.initSpeaker() {
		return
	}

	stream, err := patternStream(pattern)
	if err != nil {
		c.logger.Warn("unable to build chime", slog.Any("error", err))
		return
	}

	speaker.Play(stream)
}

// initSpeaker opens the audio device on first use. A failure is logged once
// and leaves the chime silent.
func (c *Chime) initSpeaker() bool {
	speakerMu.Lock()
	defer speakerMu.Unlock()

	if speakerState == speakerUntried {
		err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
		if err != nil {
			c.logger.Warn("audio output unavailable", slog.Any("error", err))

			speakerState = speakerFailed
		} else {
			speakerState = speakerReady
		}
	}

	return speakerState == speakerReady
}

// patternStream renders the tones of a pattern into one stream.
func patternStream(pattern []tone) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, 2*len(pattern))

	for _, t := range pattern {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			return nil, err
		}

		quiet := &effects.Volume{
			Streamer: sine,
			Base:     2,
			Volume:   -2,
		}

		parts = append(parts, beep.Take(sampleRate.N(t.dur), quiet))

		if t.pause > 0 {
			parts = append(parts, silence(sampleRate.N(t.pause)))
		}
	}

	return beep.Seq(parts...), nil
}

func silence(n int) beep.Streamer {
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		clear(samples)
		return len(samples), true
	}))
}
