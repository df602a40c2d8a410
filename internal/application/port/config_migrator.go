package port

// MigrationResult lists default keys absent from an existing config file.
// Keys use dot notation, e.g. "interaction.degenerate_policy".
type MigrationResult struct {
	MissingKeys []string
	ConfigFile  string
}

// KeyInfo describes one missing key for the migrate prompt.
type KeyInfo struct {
	Key          string
	Type         string // bool, int, float, string or unknown
	DefaultValue string
}

// ConfigMigrator brings an older config.toml up to the current set of keys
// without touching values the user already set.
type ConfigMigrator interface {
	// CheckMigration returns nil when the file is missing or complete.
	CheckMigration() (*MigrationResult, error)
	// Migrate rewrites the file with defaults filled in and returns the added keys.
	Migrate() ([]string, error)
	GetKeyInfo(key string) KeyInfo
	ConfigFile() string
}
