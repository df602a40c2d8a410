// Package config loads, validates, watches and writes the subdivide
// configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// ErrConfigExists is returned when writing a default config over an existing file.
var ErrConfigExists = errors.New("config file already exists")

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	return newManager(v, dir)
}

// NewManagerWithFile creates a configuration manager reading an explicit file.
func NewManagerWithFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	return newManager(v, filepath.Dir(path))
}

func newManager(v *viper.Viper, dir string) (*Manager, error) {
	// SUBDIVIDE_LAYOUT_MIN_FRACTION, SUBDIVIDE_INTERACTION_EDGE_THRESHOLD...
	v.SetEnvPrefix("SUBDIVIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "SUBDIVIDE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SUBDIVIDE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SUBDIVIDE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SUBDIVIDE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A missing
// file is not an error: defaults and environment apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.ConfigFile(), err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.ConfigFile(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch DegenerateSplit(strings.ToLower(strings.TrimSpace(string(config.Interaction.DegenerateSplit)))) {
	case "", DegenerateSplitCommit:
		config.Interaction.DegenerateSplit = DegenerateSplitCommit
	case DegenerateSplitDiscard:
		config.Interaction.DegenerateSplit = DegenerateSplitDiscard
	}

	switch SplitModifier(strings.ToLower(strings.TrimSpace(string(config.Interaction.SplitModifier)))) {
	case "", SplitModifierAlt:
		config.Interaction.SplitModifier = SplitModifierAlt
	case SplitModifierCtrl:
		config.Interaction.SplitModifier = SplitModifierCtrl
	case SplitModifierShift:
		config.Interaction.SplitModifier = SplitModifierShift
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	config.Logging.File = strings.TrimSpace(config.Logging.File)
	if config.Logging.File == "" {
		config.Logging.File = getDefaultLogFile()
	}

	normalizePalette(&config.Appearance.Palette)
}

// normalizePalette fills unset colors from the dark palette.
func normalizePalette(p *ColorPalette) {
	d := DefaultDarkPalette()
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&p.Background, d.Background)
	fill(&p.Surface, d.Surface)
	fill(&p.SurfaceVariant, d.SurfaceVariant)
	fill(&p.Text, d.Text)
	fill(&p.Muted, d.Muted)
	fill(&p.Accent, d.Accent)
	fill(&p.Border, d.Border)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file in use, or the path
// one would be created at.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configName)
}

// WriteDefault writes the default configuration and its JSON schema next to
// it. An existing file is only replaced when force is set.
func (m *Manager) WriteDefault(force bool) (string, error) {
	path := m.ConfigFile()
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%s: %w", path, ErrConfigExists)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return path, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return path, err
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(path), schemaName)); err != nil {
		return path, err
	}
	return path, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setInteractionDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.min_fraction", defaults.Layout.MinFraction)
}

func (m *Manager) setInteractionDefaults(defaults *Config) {
	m.viper.SetDefault("interaction.edge_threshold", defaults.Interaction.EdgeThreshold)
	m.viper.SetDefault("interaction.divider_hit_slop", defaults.Interaction.DividerHitSlop)
	m.viper.SetDefault("interaction.degenerate_split", string(defaults.Interaction.DegenerateSplit))
	m.viper.SetDefault("interaction.split_modifier", string(defaults.Interaction.SplitModifier))
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.show_pane_ids", defaults.Appearance.ShowPaneIDs)
	m.viper.SetDefault("appearance.palette.background", defaults.Appearance.Palette.Background)
	m.viper.SetDefault("appearance.palette.surface", defaults.Appearance.Palette.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", defaults.Appearance.Palette.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
}
