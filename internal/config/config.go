package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Output format names accepted by OutputConfig.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all decoder configuration
type Config struct {
	Output OutputConfig
	Log    LogConfig
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format  string
	Compact bool
}

// LogConfig holds diagnostic logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Output: OutputConfig{
			Format:  getEnv("JWT_DECODE_OUTPUT", FormatText),
			Compact: getBoolEnv("JWT_DECODE_COMPACT", false),
		},
		Log: LogConfig{
			Level: getEnv("JWT_DECODE_LOG_LEVEL", "info"),
		},
	}, nil
}

// IsJSON returns true if output should be rendered as JSON
func (c *Config) IsJSON() bool {
	return c.Output.Format == FormatJSON
}

// SlogLevel maps the configured level name onto a slog level. Unknown names
// fall back to info; Validate reports them before logging starts.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that all configuration values are valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Output.Format != FormatText && c.Output.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("JWT_DECODE_OUTPUT must be 'text' or 'json', got '%s'", c.Output.Format))
	}
	if c.Output.Compact && c.Output.Format == FormatText {
		errs = append(errs, errors.New("JWT_DECODE_COMPACT requires JWT_DECODE_OUTPUT=json"))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("JWT_DECODE_LOG_LEVEL must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
