package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/config/colors"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Kind:", "Days:"
	ValueStyle    lipgloss.Style // For field values

	// Status styles
	DoneStyle    lipgloss.Style
	PendingStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	DoneStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Success))

	PendingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Error))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Warning))
}
