package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the explorer.
var (
	ColorRed    = lipgloss.Color("#FF5F5F")
	ColorGreen  = lipgloss.Color("#5FD75F")
	ColorYellow = lipgloss.Color("#FFD75F")
	ColorCyan   = lipgloss.Color("#00D7D7")
	ColorGray   = lipgloss.Color("#767676")
)

// Base styles reused by prompts and reports.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorYellow).
			MarginTop(1)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	OptionStyle = lipgloss.NewStyle()

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)

// Separator line printed between statistic groups
const Separator = "----------------------------------------"
