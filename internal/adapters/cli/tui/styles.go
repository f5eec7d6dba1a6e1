package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	normalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	uncheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	editorFrame    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)
