package logging

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")

	infoStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	errorStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

func styleFor(level Level) lipgloss.Style {
	switch level {
	case LevelWarn:
		return warnStyle
	case LevelError:
		return errorStyle
	default:
		return infoStyle
	}
}
