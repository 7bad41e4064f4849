package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Bold(true)
	overrideStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badgeStyle    = lipgloss.NewStyle().Faint(true)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)
