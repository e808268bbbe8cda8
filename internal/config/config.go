package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"

	apperrors "vgsales/internal/errors"
)

// Config represents the complete application configuration.
// Only ambient concerns are configurable; the report pipeline is fixed.
type Config struct {
	Logging LoggingConfig `envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `envconfig:"LEVEL" default:"info"`
	Output   string `envconfig:"OUTPUT" default:"both"`
	FilePath string `envconfig:"FILE_PATH" default:"logs/vgsales-report.log"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("VGS", &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks configuration values
func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return apperrors.NewConfigError("invalid logging level: "+c.Logging.Level, nil)
	}

	switch strings.ToLower(c.Logging.Output) {
	case "console", "file", "both":
	default:
		return apperrors.NewConfigError("invalid logging output: "+c.Logging.Output, nil)
	}

	return nil
}
