package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/subdivide/internal/application/port"
	"github.com/bnema/subdivide/internal/application/port/mocks"
	"github.com/bnema/subdivide/internal/application/usecase"
)

func TestMigrateConfigUseCase_Check_NoMigrationNeeded(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(nil, nil)
	migrator.EXPECT().ConfigFile().Return("/cfg/config.toml")

	uc := usecase.NewMigrateConfigUseCase(migrator)

	result, err := uc.Check(context.Background())

	require.NoError(t, err)
	assert.False(t, result.NeedsMigration)
	assert.Empty(t, result.MissingKeys)
	assert.Equal(t, "/cfg/config.toml", result.ConfigFile)
}

func TestMigrateConfigUseCase_Check_MigrationNeeded(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	migrator.EXPECT().CheckMigration().Return(&port.MigrationResult{
		MissingKeys: []string{"logging.compress", "logging.max_backups"},
		ConfigFile:  "/cfg/config.toml",
	}, nil)
	migrator.EXPECT().GetKeyInfo("logging.compress").Return(port.KeyInfo{
		Key: "logging.compress", Type: "bool", DefaultValue: "true",
	})
	migrator.EXPECT().GetKeyInfo("logging.max_backups").Return(port.KeyInfo{
		Key: "logging.max_backups", Type: "int", DefaultValue: "3",
	})

	uc := usecase.NewMigrateConfigUseCase(migrator)

	result, err := uc.Check(context.Background())

	require.NoError(t, err)
	assert.True(t, result.NeedsMigration)
	require.Len(t, result.MissingKeys, 2)
	assert.Equal(t, "int", result.MissingKeys[1].Type)
	assert.Equal(t, "/cfg/config.toml", result.ConfigFile)
}

func TestMigrateConfigUseCase_Check_Error(t *testing.T) {
	migrator := mocks.NewMockConfigMigrator(t)
	checkErr := errors.New("failed to parse user config")
	migrator.EXPECT().CheckMigration().Return(nil, checkErr)

	_, err := usecase.NewMigrateConfigUseCase(migrator).Check(context.Background())

	assert.ErrorIs(t, err, checkErr)
}

func TestMigrateConfigUseCase_Execute(t *testing.T) {
	t.Run("adds keys", func(t *testing.T) {
		migrator := mocks.NewMockConfigMigrator(t)
		migrator.EXPECT().ConfigFile().Return("/cfg/config.toml")
		migrator.EXPECT().Migrate().Return([]string{"layout.min_fraction"}, nil)

		out, err := usecase.NewMigrateConfigUseCase(migrator).Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"layout.min_fraction"}, out.AddedKeys)
		assert.Equal(t, "/cfg/config.toml", out.ConfigFile)
	})

	t.Run("nothing to add", func(t *testing.T) {
		migrator := mocks.NewMockConfigMigrator(t)
		migrator.EXPECT().ConfigFile().Return("/cfg/config.toml")
		migrator.EXPECT().Migrate().Return(nil, nil)

		out, err := usecase.NewMigrateConfigUseCase(migrator).Execute(context.Background())

		require.NoError(t, err)
		assert.Empty(t, out.AddedKeys)
	})

	t.Run("failure", func(t *testing.T) {
		migrator := mocks.NewMockConfigMigrator(t)
		writeErr := errors.New("read-only file system")
		migrator.EXPECT().ConfigFile().Return("/cfg/config.toml")
		migrator.EXPECT().Migrate().Return(nil, writeErr)

		_, err := usecase.NewMigrateConfigUseCase(migrator).Execute(context.Background())

		assert.ErrorIs(t, err, writeErr)
	})
}
