package config

import (
	"fmt"
	"strings"
)

// Validate validates the configuration and returns an error if invalid
func Validate(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config validation failed: %w", err)
	}

	if err := validateUIConfig(&config.UI); err != nil {
		return fmt.Errorf("ui config validation failed: %w", err)
	}

	if err := validateWindowConfig(&config.Window); err != nil {
		return fmt.Errorf("window config validation failed: %w", err)
	}

	return nil
}

// validateLogConfig validates log configuration
func validateLogConfig(config *LogConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
		"panic": true,
	}

	level := strings.ToLower(config.Level)
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, fatal, panic)", config.Level)
	}

	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	format := strings.ToLower(config.Format)
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (valid: text, json)", config.Format)
	}

	return nil
}

// validateUIConfig validates user interface configuration
func validateUIConfig(config *UIConfig) error {
	if strings.TrimSpace(config.DateFormat) == "" {
		return fmt.Errorf("date_format cannot be empty")
	}

	if config.MaxNameWidth <= 0 {
		return fmt.Errorf("max_name_width must be positive, got: %d", config.MaxNameWidth)
	}

	return nil
}

// validateWindowConfig validates window geometry configuration
func validateWindowConfig(config *WindowConfig) error {
	if strings.TrimSpace(config.GeometryFile) == "" {
		return fmt.Errorf("geometry_file is required")
	}

	if config.QueryTimeoutMs <= 0 {
		return fmt.Errorf("query_timeout_ms must be positive, got: %d", config.QueryTimeoutMs)
	}

	return nil
}
