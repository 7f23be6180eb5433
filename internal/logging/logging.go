// Package logging sets up the process wide slog logger. Records go to a
// rotated file so they never interleave with the terminal UI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/proctor/internal/osutil"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// New returns a logger writing text records at level or above to w. An
// unknown level falls back to info.
func New(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "proctor",
		ReportTimestamp: true,
	})

	return slog.New(handler)
}

// Setup installs a logger writing to the rotated file at path as the slog
// default. The returned closer flushes and closes the file.
func Setup(path, level string) (io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, level))

	return w, nil
}
