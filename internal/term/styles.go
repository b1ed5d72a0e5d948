package term

import "github.com/charmbracelet/lipgloss"

var (
	Green  = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2))
	Red    = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(1))
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3))
	Dim    = lipgloss.NewStyle().Faint(true)

	CheckMark = Green.Render("✓")
	CrossMark = Red.Render("✗")
	WarnMark  = Yellow.Render("!")
)
