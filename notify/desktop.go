package notify

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

const desktopTitle = "proctor"

// Desktop shows a desktop notification for warnings, chapter ends and the
// end of the session.
type Desktop struct {
	logger *slog.Logger
	send   func(title, message, icon string) error
	icon   string
	mu     sync.Mutex
	muted  bool
}

// NewDesktop returns a Desktop notifier. icon may be empty.
func NewDesktop(logger *slog.Logger, icon string) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}

	return &Desktop{
		logger: logger,
		send:   sendDesktop,
		icon:   icon,
	}
}

func sendDesktop(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

func (d *Desktop) Start()    {}
func (d *Desktop) Continue() {}
func (d *Desktop) Cancel()   {}

func (d *Desktop) MinutesLeft(minutes float64) {
	d.notify(MinutesLeftPhrase(minutes))
}

func (d *Desktop) NextChapter() {
	d.notify(PhraseNextChapter)
}

func (d *Desktop) End() {
	d.notify(PhraseEnd)
}

func (d *Desktop) Mute() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.muted = true
}

func (d *Desktop) Unmute() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.muted = false
}

func (d *Desktop) notify(msg string) {
	d.mu.Lock()
	muted := d.muted
	d.mu.Unlock()

	if muted {
		return
	}

	go func() {
		if err := d.send(desktopTitle, msg, d.icon); err != nil {
			d.logger.Warn("desktop notification failed", slog.Any("error", err))
		}
	}()
}
