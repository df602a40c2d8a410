package entity

// ConfigKeyInfo describes a single configuration key for schema documentation.
type ConfigKeyInfo struct {
	// Key is the full dotted path (e.g., "interaction.edge_threshold")
	Key string `json:"key"`

	// Type is the Go type name (e.g., "string", "bool", "float64")
	Type    string `json:"type"`
	Default string `json:"default"`

	Description string `json:"description"`

	// Values lists valid enum values; empty for free-form keys
	Values []string `json:"values,omitempty"`

	// Range describes numeric constraints (e.g., ">=0")
	Range string `json:"range,omitempty"`

	// Section groups related keys (e.g., "Layout", "Logging")
	Section string `json:"section"`
}
