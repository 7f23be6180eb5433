package waker

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInhibitCommand(t *testing.T) {
	argv, err := inhibitCommand("darwin", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"caffeinate", "-d"}, argv)

	argv, err = inhibitCommand("linux", "")
	require.NoError(t, err)
	assert.Equal(t, "systemd-inhibit", argv[0])
	assert.Equal(t, []string{"sleep", "infinity"}, argv[len(argv)-2:])

	argv, err = inhibitCommand("windows", "")
	require.NoError(t, err)
	assert.Empty(t, argv)

	argv, err = inhibitCommand("windows", `xset s off`)
	require.NoError(t, err)
	assert.Equal(t, []string{"xset", "s", "off"}, argv)
}

func TestUnsupportedIsNoop(t *testing.T) {
	w := New(Options{Command: "proctor-no-such-inhibitor"})

	assert.False(t, w.Supported())

	w.KeepScreenOn()
	assert.False(t, w.Held())

	w.ReleaseScreen()
	w.ReleaseScreen()
}

func TestKeepAndRelease(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "starts.txt")

	w := New(Options{Command: `sh -c 'echo started >> ` + out + `; exec sleep 30'`})
	require.True(t, w.Supported())

	w.KeepScreenOn()
	w.KeepScreenOn()
	assert.True(t, w.Held())

	require.Eventually(t, func() bool {
		b, err := os.ReadFile(out)
		return err == nil && strings.Count(string(b), "started") == 1
	}, 5*time.Second, 20*time.Millisecond)

	w.ReleaseScreen()
	w.ReleaseScreen()
	assert.False(t, w.Held())

	w.KeepScreenOn()
	assert.True(t, w.Held())

	require.Eventually(t, func() bool {
		b, err := os.ReadFile(out)
		return err == nil && strings.Count(string(b), "started") == 2
	}, 5*time.Second, 20*time.Millisecond)

	w.ReleaseScreen()
}

func TestInhibitorExitClearsLock(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	w := New(Options{Command: "true"})
	require.True(t, w.Supported())

	w.KeepScreenOn()

	assert.Eventually(t, func() bool {
		return !w.Held()
	}, 5*time.Second, 20*time.Millisecond)
}
