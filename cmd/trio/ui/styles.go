// Package ui provides the full-screen menu for trio, built on bubbletea.
// Colors come in a light and a dark palette picked from the terminal or config.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trio/internal/config"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#101F38") // Dark Blue
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A") // Lime Green
	LightMuted      = lipgloss.Color("#8a93a0")
	LightBorder     = lipgloss.Color("#dce0e5")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A") // Lime Green (flipped)
	DarkAccent     = lipgloss.Color("#4db6ac") // Teal
	DarkMuted      = lipgloss.Color("#6b7a90")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935") // Red
	Success     = lipgloss.Color("#8BC34A") // Lime Green
	Warning     = lipgloss.Color("#FFC107") // Yellow
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme guesses the terminal background. COLORFGBG is read first
// ("fg;bg", where bg 0-6 or 8 is dark), then TRIO_DARK_MODE=1.
func DetectTheme() Theme {
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("TRIO_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeFor maps a ux.theme value to a Theme; auto and empty detect.
func ThemeFor(name string) Theme {
	switch name {
	case config.ThemeLight:
		return LightTheme()
	case config.ThemeDark:
		return DarkTheme()
	}
	return DetectTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Prompt   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	Table lipgloss.Style
	Cell  lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Table: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Cell: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1).
			Align(lipgloss.Right),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
