package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using basic ANSI color codes so the bar renders the same on
// every terminal that understands SGR 30-37:
//   RED   -> ANSI 1
//   GREEN -> ANSI 2
//   BLUE  -> ANSI 4

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Progress bar segment colors.
const (
	ProgressFailedColor  = ColorError
	ProgressSuccessColor = ColorSuccess
	ProgressPendingColor = ColorSecondary

	// ProgressRemainingColor paints the not-yet-reached part of the bar.
	// Currently the same red as failures.
	ProgressRemainingColor lipgloss.Color = "1"
)
