package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/hexcalc/internal/ui"
)

// Style variables for the interactive converter.
// Initialized from the ui theme system via initTUIStyles().
var (
	titleStyle   lipgloss.Style
	panelStyle   lipgloss.Style
	recordStyle  lipgloss.Style
	inputStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	recordStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	inputStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
