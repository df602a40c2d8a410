package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/subdivide/internal/application/port"
)

// Migrator implements port.ConfigMigrator for one config file.
type Migrator struct {
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
	configFile   string
}

// NewMigrator creates a Migrator comparing configFile against the defaults.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{
		defaultViper: v,
		configFile:   configFile,
	}
}

// ConfigFile returns the file this migrator reads and rewrites.
func (m *Migrator) ConfigFile() string {
	return m.configFile
}

// CheckMigration checks if the config file is missing any default keys.
// Returns nil if no migration is needed.
func (m *Migrator) CheckMigration() (*port.MigrationResult, error) {
	// A missing file is created with every default by config init.
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	missing := findMissingKeys(m.getAllDefaultKeys(), userKeys)
	if len(missing) == 0 {
		return nil, nil
	}

	return &port.MigrationResult{
		MissingKeys: missing,
		ConfigFile:  m.configFile,
	}, nil
}

// Migrate rewrites the config file with every missing default filled in.
// Values the user set are kept; comments are not.
func (m *Migrator) Migrate() ([]string, error) {
	result, err := m.CheckMigration()
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	// Plain viper without environment binding so overrides never leak into the file.
	userViper := viper.New()
	userViper.SetConfigFile(m.configFile)
	userViper.SetConfigType("toml")

	mgr := &Manager{viper: userViper}
	mgr.setDefaults()

	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := mgr.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return nil, err
	}

	return result.MissingKeys, nil
}

// GetKeyInfo returns type and default value of a config key.
func (m *Migrator) GetKeyInfo(key string) port.KeyInfo {
	value := m.defaultViper.Get(key)
	if value == nil {
		return port.KeyInfo{
			Key:          key,
			Type:         "unknown",
			DefaultValue: "unknown",
		}
	}

	return port.KeyInfo{
		Key:          key,
		Type:         getTypeName(value),
		DefaultValue: formatValue(value),
	}
}

func (m *Migrator) getAllDefaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

// getUserConfigKeys parses the TOML file and returns every defined key in
// dot notation.
func (m *Migrator) getUserConfigKeys() (map[string]bool, error) {
	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenMap(raw, "", keys)
	return keys, nil
}

func flattenMap(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}

		if nested, ok := v.(map[string]any); ok {
			flattenMap(nested, key, keys)
			continue
		}
		keys[key] = true
	}
}

func findMissingKeys(defaultKeys []string, userKeys map[string]bool) []string {
	missing := make([]string, 0)
	for _, key := range defaultKeys {
		if keyOrRelatedExists(key, userKeys) {
			continue
		}
		missing = append(missing, key)
	}
	sort.Strings(missing)
	return missing
}

// keyOrRelatedExists reports whether key, a parent holding a scalar or list,
// or any child of key is defined.
func keyOrRelatedExists(key string, keys map[string]bool) bool {
	if keys[key] {
		return true
	}

	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i > 0; i-- {
		if keys[strings.Join(parts[:i], ".")] {
			return true
		}
	}

	keyPrefix := key + "."
	for userKey := range keys {
		if strings.HasPrefix(userKey, keyPrefix) {
			return true
		}
	}
	return false
}

func getTypeName(value any) string {
	if value == nil {
		return "unknown"
	}

	t := reflect.TypeOf(value)
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.String:
		return "string"
	case reflect.Slice:
		return "list"
	case reflect.Map:
		return "map"
	default:
		return t.String()
	}
}

// formatValue returns a human-readable string representation of a value.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("%t", v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32, float64:
		return fmt.Sprintf("%v", v)
	case string:
		if v == "" {
			return `""`
		}
		const maxStringLen = 50
		if len(v) > maxStringLen {
			return fmt.Sprintf("%q...", v[:maxStringLen-3])
		}
		return fmt.Sprintf("%q", v)
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice:
			if rv.Len() == 0 {
				return "[]"
			}
			return fmt.Sprintf("[%d items]", rv.Len())
		case reflect.Map:
			if rv.Len() == 0 {
				return "{}"
			}
			return fmt.Sprintf("{%d entries}", rv.Len())
		}
		return fmt.Sprintf("%v", v)
	}
}
