package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 0.05, cfg.Layout.MinFraction, 1e-12)
	assert.Equal(t, DegenerateSplitCommit, cfg.Interaction.DegenerateSplit)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, validateConfig(cfg))
}

func TestGetXDGDirs(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cfg/subdivide", dirs.ConfigHome)
	assert.Equal(t, "/tmp/state/subdivide", dirs.StateHome)

	file, err := GetLogFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/subdivide/subdivide.log", file)
}
