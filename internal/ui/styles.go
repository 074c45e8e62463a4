package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#B57EDC") // Magenta
	AccentColor  = lipgloss.Color("#00D4AA") // Teal accent

	// Status colors
	SuccessColor = lipgloss.Color("#2ECC71") // Green
	WarningColor = lipgloss.Color("#F1C40F") // Yellow
	ErrorColor   = lipgloss.Color("#E74C3C") // Red
	InfoColor    = lipgloss.Color("#5B9BD5") // Blue

	// Text colors
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtextColor = lipgloss.Color("#B0B0B0") // Light gray
	MutedColor   = lipgloss.Color("#6C6C6C") // Dark gray
)

// Base styles
var (
	// Primary text style
	PrimaryStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Success style
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// Warning style
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Error style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Info style
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor).
			Bold(true)

	// White text
	WhiteStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Gray text for values
	GrayStyle = lipgloss.NewStyle().
			Foreground(SubtextColor)

	// Muted/dark text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Component styles
var (
	// Panel border style
	PanelBorderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Panel title style
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Field name style (left column of a category panel)
	FieldStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// Sub-metric key style (inside nested blocks)
	SubKeyStyle = lipgloss.NewStyle().
			Foreground(SubtextColor)

	// Table border style
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// Table cell style
	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Gauge styles
	GaugeOKStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	GaugeHotStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Status icons
const (
	IconSuccess = "✓"
	IconWarning = "⚠"
	IconError   = "✗"
	IconInfo    = "ℹ"
)
