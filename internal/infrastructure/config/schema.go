package config

// Config is the root configuration.
type Config struct {
	// Layout controls the partition tree.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout"`
	// Interaction tunes pointer hit testing and the split gesture.
	Interaction InteractionConfig `mapstructure:"interaction" toml:"interaction"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging"`
	// Appearance styles the terminal demo.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance"`
}

// LayoutConfig holds partition tree settings.
type LayoutConfig struct {
	// MinFraction is the smallest share of its parent split any child may take.
	MinFraction float64 `mapstructure:"min_fraction" toml:"min_fraction" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=0.5,default=0.05"`
}

// DegenerateSplit selects what happens to a split released below the minimum.
type DegenerateSplit string

const (
	DegenerateSplitCommit  DegenerateSplit = "commit"
	DegenerateSplitDiscard DegenerateSplit = "discard"
)

// SplitModifier is the key that arms the edge-drag split gesture in the TUI.
type SplitModifier string

const (
	SplitModifierAlt   SplitModifier = "alt"
	SplitModifierCtrl  SplitModifier = "ctrl"
	SplitModifierShift SplitModifier = "shift"
)

// InteractionConfig holds pointer interaction settings. Distances are in host
// units: terminal cells for the TUI, pixels for graphical hosts.
type InteractionConfig struct {
	EdgeThreshold   float64         `mapstructure:"edge_threshold" toml:"edge_threshold" jsonschema:"minimum=0,default=10"`
	DividerHitSlop  float64         `mapstructure:"divider_hit_slop" toml:"divider_hit_slop" jsonschema:"minimum=0,default=4"`
	DegenerateSplit DegenerateSplit `mapstructure:"degenerate_split" toml:"degenerate_split" jsonschema:"enum=commit,enum=discard,default=commit"`
	SplitModifier   SplitModifier   `mapstructure:"split_modifier" toml:"split_modifier" jsonschema:"enum=alt,enum=ctrl,enum=shift,default=alt"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File receives TUI logs. Empty means the XDG state directory.
	File string `mapstructure:"file" toml:"file"`
	// MaxSizeMB rotates the log file once it would grow past this size.
	MaxSizeMB  int  `mapstructure:"max_size_mb" toml:"max_size_mb" jsonschema:"minimum=1,default=10"`
	MaxBackups int  `mapstructure:"max_backups" toml:"max_backups" jsonschema:"minimum=0,default=3"`
	Compress   bool `mapstructure:"compress" toml:"compress" jsonschema:"default=true"`
}

// AppearanceConfig holds TUI styling.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette"`
	// ShowPaneIDs prints each pane's identity in its top-left cell.
	ShowPaneIDs bool `mapstructure:"show_pane_ids" toml:"show_pane_ids"`
}

// ColorPalette holds hex colors for the TUI.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Surface        string `mapstructure:"surface" toml:"surface" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Text           string `mapstructure:"text" toml:"text" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Muted          string `mapstructure:"muted" toml:"muted" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Accent         string `mapstructure:"accent" toml:"accent" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Border         string `mapstructure:"border" toml:"border" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
}
