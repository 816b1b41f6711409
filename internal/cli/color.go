package cli

import "github.com/charmbracelet/lipgloss"

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C853"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// colorEnabled is switched off for --no-color, piped output and display.color=false
var colorEnabled = true

// SetColorEnabled turns styling on or off for all helpers
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

func Primary(text string) string { return render(primaryStyle, text) }
func Error(text string) string   { return render(errorStyle, text) }
func Warning(text string) string { return render(warningStyle, text) }
func Success(text string) string { return render(successStyle, text) }
func Silent(text string) string  { return render(silentStyle, text) }
func Header(text string) string  { return render(headerStyle, text) }
