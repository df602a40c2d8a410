package usecase

import (
	"context"

	"github.com/bnema/subdivide/internal/application/port"
	"github.com/bnema/subdivide/internal/logging"
)

// CheckConfigMigrationOutput holds the result of the migration check.
type CheckConfigMigrationOutput struct {
	// NeedsMigration is true if there are missing keys.
	NeedsMigration bool
	MissingKeys    []port.KeyInfo
	ConfigFile     string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// AddedKeys contains the keys that were added.
	AddedKeys  []string
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// Check checks if the user config is missing any default keys.
func (uc *MigrateConfigUseCase) Check(ctx context.Context) (*CheckConfigMigrationOutput, error) {
	log := logging.FromContext(ctx)

	result, err := uc.migrator.CheckMigration()
	if err != nil {
		log.Warn().Err(err).Msg("config migration check failed")
		return nil, err
	}

	if result == nil || len(result.MissingKeys) == 0 {
		log.Debug().Msg("config is up to date, no migration needed")
		return &CheckConfigMigrationOutput{ConfigFile: uc.migrator.ConfigFile()}, nil
	}

	keyInfos := make([]port.KeyInfo, 0, len(result.MissingKeys))
	for _, key := range result.MissingKeys {
		keyInfos = append(keyInfos, uc.migrator.GetKeyInfo(key))
	}

	log.Debug().
		Int("missing_keys", len(result.MissingKeys)).
		Str("config_file", result.ConfigFile).
		Msg("config migration check completed")

	return &CheckConfigMigrationOutput{
		NeedsMigration: true,
		MissingKeys:    keyInfos,
		ConfigFile:     result.ConfigFile,
	}, nil
}

// Execute adds missing default keys to the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)
	configFile := uc.migrator.ConfigFile()

	added, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Str("config_file", configFile).Msg("config migration failed")
		return nil, err
	}

	if len(added) == 0 {
		log.Debug().Msg("no migration needed")
	} else {
		log.Info().
			Int("added_keys", len(added)).
			Str("config_file", configFile).
			Msg("config migration completed")
	}

	return &MigrateConfigOutput{
		AddedKeys:  added,
		ConfigFile: configFile,
	}, nil
}
