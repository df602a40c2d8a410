package config

import (
	"fmt"

	"github.com/bnema/subdivide/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout      = "Layout"
	SectionInteraction = "Interaction"
	SectionLogging     = "Logging"
	SectionAppearance  = "Appearance"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getInteractionKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.min_fraction",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Layout.MinFraction),
			Description: "Smallest share of its parent split a pane or group may take",
			Range:       "0-0.5 (exclusive)",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getInteractionKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "interaction.edge_threshold",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Interaction.EdgeThreshold),
			Description: "Distance from a pane edge, in host units, where a split drag may start",
			Range:       ">=0",
			Section:     SectionInteraction,
		},
		{
			Key:         "interaction.divider_hit_slop",
			Type:        "float64",
			Default:     fmt.Sprintf("%g", defaults.Interaction.DividerHitSlop),
			Description: "Distance from a divider, in host units, that still grabs it",
			Range:       ">=0",
			Section:     SectionInteraction,
		},
		{
			Key:         "interaction.degenerate_split",
			Type:        "string",
			Default:     string(defaults.Interaction.DegenerateSplit),
			Description: "What a split released below the minimum does",
			Values:      []string{string(DegenerateSplitCommit), string(DegenerateSplitDiscard)},
			Section:     SectionInteraction,
		},
		{
			Key:         "interaction.split_modifier",
			Type:        "string",
			Default:     string(defaults.Interaction.SplitModifier),
			Description: "Key held with the mouse button to drag a new pane out of an edge (TUI)",
			Values:      []string{string(SplitModifierAlt), string(SplitModifierCtrl), string(SplitModifierShift)},
			Section:     SectionInteraction,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/subdivide/subdivide.log",
			Description: "Log file used by the terminal UI",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file once it reaches this size",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep (0 keeps all)",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.show_pane_ids",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Appearance.ShowPaneIDs),
			Description: "Print pane identities inside panes",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Color palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
	}
}
