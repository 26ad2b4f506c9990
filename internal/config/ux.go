package config

import "fmt"

// Theme names accepted by ux.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UXConfig holds user interface configuration.
type UXConfig struct {
	// TUI starts the full-screen menu instead of the line prompts
	TUI bool `yaml:"tui" json:"tui"`

	// Theme is auto, light or dark
	Theme string `yaml:"theme" json:"theme"`
}

// Validate checks the theme name.
func (c UXConfig) Validate() error {
	switch c.Theme {
	case "", ThemeAuto, ThemeLight, ThemeDark:
		return nil
	}
	return fmt.Errorf("invalid ux.theme: %s (valid: auto, light, dark)", c.Theme)
}
