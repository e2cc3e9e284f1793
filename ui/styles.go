package ui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("99")  // purple
	secondary = lipgloss.Color("240") // gray
	muted     = lipgloss.Color("245")
	text      = lipgloss.Color("252")
	accent    = lipgloss.Color("86")  // green
	danger    = lipgloss.Color("196") // red
	warning   = lipgloss.Color("214") // orange

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1)
	sourceStyle = lipgloss.NewStyle().Foreground(muted)

	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary)

	// list
	normalStyle   = lipgloss.NewStyle().Foreground(text)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	platformStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accent).
			Padding(0, 1)
	foreignPlatformStyle = lipgloss.NewStyle().
				Foreground(text).
				Background(secondary).
				Padding(0, 1)
	cmdPreviewStyle = lipgloss.NewStyle().Foreground(muted).Italic(true)

	// output
	outputTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(secondary)
	errorStyle       = lipgloss.NewStyle().Foreground(danger)
	warningStyle     = lipgloss.NewStyle().Foreground(warning).Bold(true)
	successStyle     = lipgloss.NewStyle().Foreground(accent).Bold(true)

	// form
	labelStyle = lipgloss.NewStyle().Foreground(primary).Bold(true)
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondary).
			Padding(0, 1)
	focusedInputStyle = inputStyle.BorderForeground(primary)
)
