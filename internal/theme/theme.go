// Package theme holds the shared lipgloss palette. Catppuccin Mocha, same as
// everything else around here.
package theme

import "github.com/charmbracelet/lipgloss"

const (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorError    lipgloss.Color = "#f38ba8"
	ColorWarning  lipgloss.Color = "#f9e2af"
	ColorSurface  lipgloss.Color = "#313244"
	ColorInactive lipgloss.Color = "#7f849c"
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	Label    = lipgloss.NewStyle().Foreground(ColorMuted)
	Body     = lipgloss.NewStyle().Foreground(ColorText)
	ErrorBar = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	Success  = lipgloss.NewStyle().Foreground(ColorSuccess)
	Box      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
)
