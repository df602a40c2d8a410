package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMigrator_GetAllDefaultKeys(t *testing.T) {
	m := NewMigrator("unused.toml")
	keys := m.getAllDefaultKeys()

	assert.Contains(t, keys, "layout.min_fraction")
	assert.Contains(t, keys, "interaction.split_modifier")
	assert.Contains(t, keys, "logging.max_backups")
	assert.Contains(t, keys, "appearance.palette.accent")
	assert.IsIncreasing(t, keys)
}

func TestMigrator_CheckMigration(t *testing.T) {
	path := writeConfig(t, `
[layout]
min_fraction = 0.1

[interaction]
edge_threshold = 4.0
divider_hit_slop = 3.0
degenerate_split = "discard"
split_modifier = "ctrl"

[appearance]
show_pane_ids = false
palette = { accent = "#ff0000" }
`)
	m := NewMigrator(path)

	result, err := m.CheckMigration()

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, path, result.ConfigFile)
	assert.Equal(t, []string{
		"appearance.palette.background",
		"appearance.palette.border",
		"appearance.palette.muted",
		"appearance.palette.surface",
		"appearance.palette.surface_variant",
		"appearance.palette.text",
		"logging.compress",
		"logging.file",
		"logging.format",
		"logging.level",
		"logging.max_backups",
		"logging.max_size_mb",
	}, result.MissingKeys)
}

func TestMigrator_CheckMigration_NoConfigFile(t *testing.T) {
	m := NewMigrator(filepath.Join(t.TempDir(), "missing.toml"))

	result, err := m.CheckMigration()

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestMigrator_CheckMigration_InvalidTOML(t *testing.T) {
	m := NewMigrator(writeConfig(t, "[layout\nmin_fraction = "))

	_, err := m.CheckMigration()

	assert.ErrorContains(t, err, "failed to parse user config")
}

func TestMigrator_Migrate(t *testing.T) {
	path := writeConfig(t, `
[layout]
min_fraction = 0.2

[logging]
level = "debug"
`)
	m := NewMigrator(path)

	added, err := m.Migrate()

	require.NoError(t, err)
	assert.Contains(t, added, "interaction.edge_threshold")
	assert.NotContains(t, added, "layout.min_fraction")

	// Second pass finds nothing left to add.
	result, err := m.CheckMigration()
	require.NoError(t, err)
	assert.Nil(t, result)

	mgr, err := NewManagerWithFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	cfg := mgr.Get()
	assert.InDelta(t, 0.2, cfg.Layout.MinFraction, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultConfig().Interaction, cfg.Interaction)
}

func TestMigrator_Migrate_UpToDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	added, err := NewMigrator(path).Migrate()

	require.NoError(t, err)
	assert.Empty(t, added)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMigrator_Migrate_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "[layout]\nmin_fraction = 0.9\n")

	_, err := NewMigrator(path).Migrate()

	assert.ErrorContains(t, err, "validation failed")
}

func TestFindMissingKeys(t *testing.T) {
	defaults := []string{"a.b", "a.c", "p.x", "p.y", "z"}
	user := map[string]bool{"a.b": true, "p": true}

	assert.Equal(t, []string{"a.c", "z"}, findMissingKeys(defaults, user))
}

func TestKeyOrRelatedExists(t *testing.T) {
	keys := map[string]bool{"appearance.palette.accent": true, "logging": true}

	assert.True(t, keyOrRelatedExists("appearance.palette.accent", keys))
	assert.True(t, keyOrRelatedExists("appearance.palette", keys), "child defined")
	assert.True(t, keyOrRelatedExists("logging.level", keys), "parent defined")
	assert.False(t, keyOrRelatedExists("layout.min_fraction", keys))
}

func TestMigrator_GetKeyInfo(t *testing.T) {
	m := NewMigrator("unused.toml")

	tests := []struct {
		key      string
		wantType string
		wantVal  string
	}{
		{"layout.min_fraction", "float", "0.05"},
		{"logging.compress", "bool", "true"},
		{"logging.max_backups", "int", "3"},
		{"appearance.show_pane_ids", "bool", "true"},
		{"interaction.split_modifier", "string", `"alt"`},
		{"nope.missing", "unknown", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			info := m.GetKeyInfo(tt.key)
			assert.Equal(t, tt.key, info.Key)
			assert.Equal(t, tt.wantType, info.Type)
			assert.Equal(t, tt.wantVal, info.DefaultValue)
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "null", formatValue(nil))
	assert.Equal(t, "[]", formatValue([]string{}))
	assert.Equal(t, "[2 items]", formatValue([]int{1, 2}))
	assert.Equal(t, "{1 entries}", formatValue(map[string]int{"a": 1}))
	long := string(make([]byte, 60))
	assert.Contains(t, formatValue(long), "...")
}
