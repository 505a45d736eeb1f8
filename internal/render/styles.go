package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorWeekend = lipgloss.Color("#60A5FA")
	colorLeapDay = lipgloss.Color("#10B981")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	emptyCellStyle = cellStyle.
			Foreground(colorMuted)

	weekendStyle = cellStyle.
			Foreground(colorWeekend)

	leapDayStyle = cellStyle.
			Foreground(colorLeapDay).
			Bold(true)

	quarterStartStyle = cellStyle.
				Underline(true)

	todayStyle = cellStyle.
			Reverse(true).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
