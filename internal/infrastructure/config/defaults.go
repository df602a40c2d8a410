package config

// Default configuration constants
const (
	// Layout defaults
	defaultMinFraction = 0.05

	// Interaction defaults (host units)
	defaultEdgeThreshold  = 10.0
	defaultDividerHitSlop = 4.0

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
)

// DefaultDarkPalette returns the built-in dark palette.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MinFraction: defaultMinFraction,
		},
		Interaction: InteractionConfig{
			EdgeThreshold:   defaultEdgeThreshold,
			DividerHitSlop:  defaultDividerHitSlop,
			DegenerateSplit: DegenerateSplitCommit,
			SplitModifier:   SplitModifierAlt,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			File:   getDefaultLogFile(),

			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			Compress:   true,
		},
		Appearance: AppearanceConfig{
			Palette:     DefaultDarkPalette(),
			ShowPaneIDs: true,
		},
	}
}

// getDefaultLogFile returns the default TUI log file, falls back to empty string on error
func getDefaultLogFile() string {
	file, err := GetLogFile()
	if err != nil {
		return ""
	}
	return file
}
