package clock

import (
	"time"

	"github.com/ayoisaiah/proctor/internal/timeutil"
)

// DefaultFPS matches the frame rate of the terminal renderer.
const DefaultFPS = 60

// FrameTicker is a FrameScheduler that aligns callbacks to a fixed frame
// grid starting at the moment the ticker was created.
type FrameTicker struct {
	epoch  time.Time
	source timeutil.Clock
	period time.Duration
}

// NewFrameTicker creates a FrameTicker running at fps frames per second.
func NewFrameTicker(source timeutil.Clock, fps int) *FrameTicker {
	if fps <= 0 {
		fps = DefaultFPS
	}

	return &FrameTicker{
		epoch:  source.Now(),
		source: source,
		period: time.Second / time.Duration(fps),
	}
}

// RequestFrame runs fn at the next frame boundary.
func (f *FrameTicker) RequestFrame(fn func()) {
	elapsed := f.source.Now().Sub(f.epoch)

	f.source.AfterFunc(f.period-elapsed%f.period, fn)
}
