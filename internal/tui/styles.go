package tui

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(13).
			Foreground(lipgloss.Color("245"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	buttonIdleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("237"))

	titleStyle = lipgloss.NewStyle().Bold(true)

	completedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	faintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
