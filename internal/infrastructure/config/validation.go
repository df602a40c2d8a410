package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config validation failed")

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateInteraction(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette("appearance.palette", config.Appearance.Palette)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	f := config.Layout.MinFraction
	if f <= 0 || f >= 0.5 {
		return []string{fmt.Sprintf("layout.min_fraction must be greater than 0 and less than 0.5 (got %g)", f)}
	}
	return nil
}

func validateInteraction(config *Config) []string {
	var validationErrors []string
	if config.Interaction.EdgeThreshold < 0 {
		validationErrors = append(validationErrors, "interaction.edge_threshold must be non-negative")
	}
	if config.Interaction.DividerHitSlop < 0 {
		validationErrors = append(validationErrors, "interaction.divider_hit_slop must be non-negative")
	}
	switch config.Interaction.DegenerateSplit {
	case DegenerateSplitCommit, DegenerateSplitDiscard:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"interaction.degenerate_split must be one of: commit, discard (got: %s)", config.Interaction.DegenerateSplit))
	}
	switch config.Interaction.SplitModifier {
	case SplitModifierAlt, SplitModifierCtrl, SplitModifierShift:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"interaction.split_modifier must be one of: alt, ctrl, shift (got: %s)", config.Interaction.SplitModifier))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.max_size_mb must be at least 1 (got: %d)", config.Logging.MaxSizeMB))
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.max_backups must be non-negative (got: %d)", config.Logging.MaxBackups))
	}
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	var validationErrors []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	} {
		if !hexColor.MatchString(field.value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s.%s must be a #rrggbb color (got: %s)", prefix, field.name, field.value))
		}
	}
	return validationErrors
}
