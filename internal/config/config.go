package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when neither --config nor TRIO_CONFIG is given.
const DefaultPath = "trio.yaml"

// Config holds all trio configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Console input bounds
	Input InputConfig `yaml:"input"`

	// Operands for the matrix task
	Matrix MatrixConfig `yaml:"matrix"`

	// Terminal presentation
	UX UXConfig `yaml:"ux"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "trio",
		Version: "1.0.0",

		Input: DefaultInputConfig(),

		Matrix: DefaultMatrixConfig(),

		UX: UXConfig{
			TUI:   false,
			Theme: ThemeAuto,
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// Path resolves the config file path: an explicit flag value wins, then
// TRIO_CONFIG, then DefaultPath.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("TRIO_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Missing file means defaults
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()
	cfg.Logging.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("TRIO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if os.Getenv("TRIO_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
	if os.Getenv("TRIO_DARK_MODE") == "1" && c.UX.Theme == ThemeAuto {
		c.UX.Theme = ThemeDark
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.Matrix.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.UX.Validate()
}
