package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#A78BFA")
	mutedColor   = lipgloss.Color("#9CA3AF")
	errorColor   = lipgloss.Color("#F87171")
	textColor    = lipgloss.Color("#F9FAFB")

	pendingColor    = lipgloss.Color("#F59E0B")
	inProgressColor = lipgloss.Color("#60A5FA")
	completedColor  = lipgloss.Color("#10B981")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	filterActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor).
				Background(primaryColor).
				Padding(0, 1)

	filterInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 1)

	statusStyles = map[string]lipgloss.Style{
		"pending":     lipgloss.NewStyle().Foreground(pendingColor),
		"in-progress": lipgloss.NewStyle().Foreground(inProgressColor),
		"completed":   lipgloss.NewStyle().Foreground(completedColor),
	}

	completedTitleStyle = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)

	helpStyle = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
)

func statusStyle(status string) lipgloss.Style {
	if style, ok := statusStyles[status]; ok {
		return style
	}
	return mutedStyle
}
