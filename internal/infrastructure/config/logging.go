package config

import (
	"time"

	"github.com/bnema/subdivide/internal/logging"
)

// LoggerConfig converts the logging section for logging.New.
func (l LoggingConfig) LoggerConfig() logging.Config {
	return logging.Config{
		Level:      logging.ParseLevel(l.Level),
		Format:     l.Format,
		TimeFormat: time.RFC3339,
	}
}

// Rotation converts the rotation settings for logging.NewToFile.
func (l LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		Compress:   l.Compress,
	}
}
