package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/reducebench/internal/ui"
)

// Style variables for the TUI dashboard, built from the ui theme palette.
var (
	panelStyle    lipgloss.Style
	titleStyle    lipgloss.Style
	versionStyle  lipgloss.Style
	rowNameStyle  lipgloss.Style
	resultStyle   lipgloss.Style
	successStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	dimStyle      lipgloss.Style
	footerStyle   lipgloss.Style
	verdictStyles map[bool]lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the dashboard styles from the TUI palette.
func initTUIStyles() {
	t := ui.DarkTUITheme

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	rowNameStyle = lipgloss.NewStyle().
		Width(12).
		Foreground(t.Text)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Error)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		MarginTop(1)

	verdictStyles = map[bool]lipgloss.Style{
		true:  successStyle,
		false: errorStyle,
	}
}
