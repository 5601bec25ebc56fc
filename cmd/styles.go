package cmd

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#2DA44E")
	errorColor  = lipgloss.Color("#CF222E")
	headColor   = lipgloss.Color("#8250DF")

	sectionStyle = lipgloss.NewStyle().
			Foreground(headColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

func deliveryStatus(sent bool) string {
	if sent {
		return successStyle.Render("sent")
	}
	return failureStyle.Render("not sent")
}
