package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Цвета палитры приложения
	primaryColor   = lipgloss.Color("#00875F") // Green
	secondaryColor = lipgloss.Color("#AA2834") // Red
	mutedColor     = lipgloss.Color("#9CA3AF") // Gray
	surfaceColor   = lipgloss.Color("#29292E")
	textColor      = lipgloss.Color("#F9FAFB")
	borderColor    = lipgloss.Color("#6B7280")

	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	backStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			MarginTop(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1)

	cardSelectedStyle = cardStyle.
				Background(surfaceColor).
				Foreground(primaryColor).
				Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Padding(1, 0)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primaryColor).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Border(lipgloss.HiddenBorder(), false, false, true, false).
				Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			PaddingLeft(2)

	buttonPrimaryStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor).
				Background(primaryColor).
				Padding(0, 2).
				MarginTop(1)

	buttonSecondaryStyle = buttonPrimaryStyle.
				Background(secondaryColor)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			MarginBottom(1)

	choiceStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	choiceSelectedStyle = choiceStyle.
				Bold(true).
				Foreground(textColor).
				Background(primaryColor)

	choiceDestructiveSelectedStyle = choiceSelectedStyle.
					Background(secondaryColor)
)
