package main

import "github.com/charmbracelet/lipgloss"

const (
	timeIdleFGColor      = "#c0c0c0"
	timeRunningFGColor   = "#8ae68a"
	timeCompletedFGColor = "#ff9f1c"
)

var (
	// Styles
	appStyle = lipgloss.NewStyle().Margin(1, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4).
			Align(lipgloss.Center)

	timeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color(timeIdleFGColor))

	timeRunningStyle = timeStyle.
				Foreground(lipgloss.Color(timeRunningFGColor))

	timeCompletedStyle = timeStyle.
				Foreground(lipgloss.Color(timeCompletedFGColor))

	statusStyle = lipgloss.NewStyle().
			Faint(true)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true).
			Padding(0, 1)

	noticeWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	noticeErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noticeSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noticeInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)
