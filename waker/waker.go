// Package waker keeps the screen awake while the clock runs by holding an
// inhibitor process for as long as the lock is wanted.
package waker

import (
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/proctor/internal/osutil"
)

// Options configures a Waker.
type Options struct {
	Logger *slog.Logger
	// Command overrides the inhibitor. It must block until killed.
	Command string
}

// Waker holds a screen lock through a long running inhibitor command.
// KeepScreenOn and ReleaseScreen are idempotent and return without waiting
// for the platform.
type Waker struct {
	logger *slog.Logger
	held   *exec.Cmd
	argv   []string
	mu     sync.Mutex
}

// New resolves the inhibitor command. When none is available the Waker
// does nothing.
func New(opts Options) *Waker {
	w := &Waker{logger: opts.Logger}

	if w.logger == nil {
		w.logger = slog.Default()
	}

	argv, err := inhibitCommand(runtime.GOOS, opts.Command)
	if err != nil {
		w.logger.Warn("invalid waker command", slog.Any("error", err))
		return w
	}

	if len(argv) == 0 {
		w.logger.Info("keeping the screen awake is not supported", slog.String("os", runtime.GOOS))
		return w
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		w.logger.Info("screen inhibitor not found", slog.String("command", argv[0]))
		return w
	}

	argv[0] = path
	w.argv = argv

	return w
}

// Supported reports whether the waker can hold the screen on.
func (w *Waker) Supported() bool {
	return len(w.argv) > 0
}

// Held reports whether the screen lock is currently held.
func (w *Waker) Held() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.held != nil
}

// KeepScreenOn acquires the screen lock unless it is already held.
func (w *Waker) KeepScreenOn() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.held != nil || !w.Supported() {
		return
	}

	//nolint:gosec // the command comes from the user's own config file
	cmd := exec.Command(w.argv[0], w.argv[1:]...)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		w.logger.Warn("unable to keep the screen awake", slog.Any("error", err))
		return
	}

	w.held = cmd

	go func() {
		err := cmd.Wait()

		w.mu.Lock()
		defer w.mu.Unlock()

		// the inhibitor exited without being released
		if w.held == cmd {
			w.logger.Warn("screen inhibitor exited", slog.Any("error", err))
			w.held = nil
		}
	}()
}

// ReleaseScreen releases the screen lock if it is held.
func (w *Waker) ReleaseScreen() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.held == nil {
		return
	}

	if w.held.Process != nil {
		kill(w.held)
	}

	w.held = nil
}

func inhibitCommand(goos, command string) ([]string, error) {
	if strings.TrimSpace(command) != "" {
		return shellquote.Split(command)
	}

	switch goos {
	case osutil.Linux:
		return []string{
			"systemd-inhibit",
			"--what=idle:sleep",
			"--who=proctor",
			"--why=Proctoring session in progress",
			"sleep",
			"infinity",
		}, nil
	case osutil.Darwin:
		return []string{"caffeinate", "-d"}, nil
	}

	return nil, nil
}
