package tui

import "github.com/charmbracelet/lipgloss"

var (
	// primaryColor is the main theme color.
	primaryColor = lipgloss.Color("#7D56F4")
	// matchedColor marks values that still match the automated suggestion.
	matchedColor = lipgloss.Color("#4ECDC4")
	// editedColor marks values the agent has corrected.
	editedColor = lipgloss.Color("#FFE66D")
	// errorColor indicates errors or failure messages.
	errorColor = lipgloss.Color("#FF6B6B")
	// subtleColor indicates less prominent UI elements.
	subtleColor = lipgloss.Color("#666666")

	// titleStyle is used for the interface title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// labelStyle formats field labels in the review pane.
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// matchedStyle formats the badge for unmodified suggestions.
	matchedStyle = lipgloss.NewStyle().
			Foreground(matchedColor)

	// editedStyle formats the badge for corrected values.
	editedStyle = lipgloss.NewStyle().
			Foreground(editedColor)

	// errorStyle formats error messages.
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// statusStyle formats transient status messages.
	statusStyle = lipgloss.NewStyle().
			Foreground(matchedColor)

	// subtleStyle formats less prominent text.
	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	// boxStyle is used for bordered content boxes.
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)
