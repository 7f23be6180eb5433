package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configHome := t.TempDir()
	dataHome := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv(envName, "testing")

	xdg.Reload()

	require.NoError(t, Initialize())

	assert.Equal(t, "proctor", Dir())
	assert.Equal(
		t,
		filepath.Join(configHome, "proctor", "config_testing.yml"),
		ConfigFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "proctor", "proctor_testing.db"),
		DBFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "proctor", "status_testing.json"),
		StatusFilePath(),
	)
	assert.Equal(
		t,
		filepath.Join(dataHome, "proctor", "log", "proctor_testing.log"),
		LogFilePath(),
	)
}
