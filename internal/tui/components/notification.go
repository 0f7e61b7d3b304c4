package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/tui/state"
	"github.com/vergashev/hafta/internal/tui/theme"
)

// RenderNotification renders a one-line notification banner colored by
// severity.
func RenderNotification(n state.Notification) string {
	var icon, fg, bg string
	switch n.Level {
	case state.LevelError:
		icon, fg, bg = "✗", theme.ErrorFg, theme.ErrorBg
	case state.LevelWarning:
		icon, fg, bg = "!", theme.WarningFg, theme.WarningBg
	default:
		icon, fg, bg = "i", theme.InfoFg, theme.InfoBg
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(icon + " " + n.Message)
}
