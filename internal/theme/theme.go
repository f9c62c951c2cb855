// Package theme provides the diagnostic styles used by the pastex CLI.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for CLI diagnostics.
type Theme struct {
	Error   lipgloss.Color // Fatal diagnostics
	Warning lipgloss.Color // Caution indicators
	Success lipgloss.Color // Completed builds
	Muted   lipgloss.Color // Dim/subtle text
}

var defaultTheme = &Theme{
	Error:   lipgloss.Color("196"), // Red
	Warning: lipgloss.Color("3"),   // Yellow
	Success: lipgloss.Color("42"),  // Green
	Muted:   lipgloss.Color("240"), // Dim gray
}

// plain keeps diagnostics uncolored for dumb terminals and pipes.
var plainTheme = &Theme{}

var themes = map[string]*Theme{
	"default": defaultTheme,
	"plain":   plainTheme,
}

var current = defaultTheme

// Load sets the current theme by name.
func Load(name string) error {
	theme, ok := themes[name]
	if !ok {
		return fmt.Errorf("theme not found: %s", name)
	}

	current = theme

	return nil
}

// Current returns the active theme.
func Current() *Theme {
	return current
}

// ErrorStyle returns the style for fatal diagnostics.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Error).Bold(true)
}

// SuccessStyle returns the style for build completion messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Success)
}

// MutedStyle returns the style for secondary output.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(current.Muted)
}
