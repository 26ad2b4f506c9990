package config

import (
	"fmt"
	"strings"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" json:"level,omitempty"`           // debug, info, warn, error
	Format     string          `yaml:"format" json:"format,omitempty"`         // json, text
	File       string          `yaml:"file" json:"file,omitempty"`             // empty = stderr
	DebugMode  bool            `yaml:"debug_mode" json:"debug_mode,omitempty"` // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories" json:"categories,omitempty"` // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// normalize lowercases level and format so "DEBUG" and "debug" mean the same.
func (c *LoggingConfig) normalize() {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
}

// Validate rejects unknown levels and formats. Case is ignored.
func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging.format: %s (valid: text, json)", c.Format)
	}
	return nil
}
