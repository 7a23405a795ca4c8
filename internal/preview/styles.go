package preview

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary  = "#7D56F4"
	colorVisible  = "#04B575"
	colorEntering = "#FFBD2E"
	colorHidden   = "#626262"
	colorBorder   = "#874BFD"
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)

	visibleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorVisible))
	enteringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorEntering))
	hiddenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorHidden))
	textStyle     = lipgloss.NewStyle().Italic(true)
)
