package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/nyfeval/internal/scoring"
)

// Catppuccin Mocha
var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorWarning lipgloss.Color = "#f9e2af"
	colorError   lipgloss.Color = "#f38ba8"
	colorCrust   lipgloss.Color = "#11111b"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	validStyle    = lipgloss.NewStyle().Foreground(colorCrust).Background(colorSuccess).Padding(0, 1)
	invalidStyle  = lipgloss.NewStyle().Foreground(colorCrust).Background(colorError).Padding(0, 1)
	buttonStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 2)
	disabledStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Foreground(colorMuted).Padding(0, 2)
)

// categoryStyle colours a ranking badge: green High, yellow Medium, red Low.
func categoryStyle(c scoring.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Foreground(colorCrust).Padding(0, 1)
	switch c {
	case scoring.CategoryHigh:
		return base.Background(colorSuccess)
	case scoring.CategoryMedium:
		return base.Background(colorWarning)
	default:
		return base.Background(colorError)
	}
}
