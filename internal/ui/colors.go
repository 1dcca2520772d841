package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/gridos/internal/config"
)

// Colors defines the color palette for the application
type Colors struct {
	Accent          lipgloss.Color
	Secondary       lipgloss.Color
	Assistant       lipgloss.Color
	Error           lipgloss.Color
	Warn            lipgloss.Color
	Text            lipgloss.Color
	Muted           lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Bar             lipgloss.Color
	Desktop         lipgloss.Color
}

// ColorsFrom converts configured hex colors into a palette
func ColorsFrom(c config.ColorConfig) Colors {
	return Colors{
		Accent:          lipgloss.Color(c.Accent),
		Secondary:       lipgloss.Color(c.Secondary),
		Assistant:       lipgloss.Color(c.Assistant),
		Error:           lipgloss.Color(c.Error),
		Warn:            lipgloss.Color(c.Warn),
		Text:            lipgloss.Color(c.Text),
		Muted:           lipgloss.Color(c.Muted),
		BorderFocused:   lipgloss.Color(c.BorderFocused),
		BorderUnfocused: lipgloss.Color(c.BorderUnfocused),
		Bar:             lipgloss.Color(c.Bar),
		Desktop:         lipgloss.Color(c.Desktop),
	}
}

// DefaultColors returns the default color palette
var DefaultColors = ColorsFrom(config.Default.Colors)
