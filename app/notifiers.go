package app

import (
	"log/slog"

	"github.com/ayoisaiah/proctor/clock"
	"github.com/ayoisaiah/proctor/internal/config"
	"github.com/ayoisaiah/proctor/notify"
	"github.com/ayoisaiah/proctor/waker"
)

// newNotifier combines the announcement channels enabled in cfg. The chime
// comes first so that it sounds before the voice starts speaking.
func newNotifier(cfg *config.Config, logger *slog.Logger) clock.Notifier {
	var m notify.Multi

	if cfg.Chime.Enabled {
		m = append(m, notify.NewChime(logger))
	}

	if cfg.Voice.Enabled {
		m = append(m, notify.NewVoice(notify.VoiceOptions{
			Logger:  logger,
			Command: cfg.Voice.Command,
			Lang:    cfg.Voice.Lang,
			Rate:    cfg.Voice.Rate,
			Volume:  cfg.Voice.Volume,
		}))
	}

	if cfg.Notifications.Desktop {
		m = append(m, notify.NewDesktop(logger, ""))
	}

	if len(m) == 0 {
		return notify.Nop{}
	}

	return m
}

// newScreenWaker returns nil when keeping the screen on is disabled.
func newScreenWaker(cfg *config.Config, logger *slog.Logger) *waker.Waker {
	if !cfg.Waker.Enabled {
		return nil
	}

	return waker.New(waker.Options{
		Logger:  logger,
		Command: cfg.Waker.Command,
	})
}
