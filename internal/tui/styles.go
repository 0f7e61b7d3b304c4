package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/tui/theme"
)

// Dialog and frame styles shared across view files, rebuilt by initStyles
// whenever the theme changes.
var (
	HeaderStyle     lipgloss.Style
	WeekRangeStyle  lipgloss.Style
	PercentStyle    lipgloss.Style
	TabActiveStyle  lipgloss.Style
	TabStyle        lipgloss.Style
	DialogBoxStyle  lipgloss.Style
	ConfirmBoxStyle lipgloss.Style
	FormBoxStyle    lipgloss.Style
	HelpBoxStyle    lipgloss.Style
	PromptStyle     lipgloss.Style
	HintStyle       lipgloss.Style
)

// initStyles builds every package-level style from the current theme.
func initStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	WeekRangeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	PercentStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent))

	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Accent)).
		Underline(true).
		Padding(0, 1)

	TabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	DialogBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2)

	ConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Warning)).
		Padding(1, 2)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	HintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}
