package csscheck

import "github.com/charmbracelet/lipgloss"

// Terminal styles for the check reporter. Lipgloss degrades colors
// automatically based on terminal capabilities.
var (
	// styleCyan is used for file locations and section headers.
	styleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleYellow is used for caret indicators and warnings.
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// styleGray is used for the checker name suffix and hints.
	styleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
