package ui

import "github.com/charmbracelet/lipgloss"

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dirtyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// Dirty renders the uncommitted-changes marker for styled list output.
func Dirty() string {
	return dirtyStyle.Render("[dirty]")
}

// Dim renders muted text for styled list output.
func Dim(s string) string {
	return dimStyle.Render(s)
}
