package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")
	errorColor   = lipgloss.Color("196")
	ownColor     = lipgloss.Color("42")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	variantStyle         = lipgloss.NewStyle().Foreground(mutedColor)
	selectedVariantStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Underline(true)

	ownStyle      = lipgloss.NewStyle().Foreground(ownColor)
	nativeStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	requiredStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)
)
