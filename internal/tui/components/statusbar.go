package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vergashev/hafta/internal/tui/theme"
)

type StatusBarProps struct {
	Width   int
	SavedAt time.Time
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: app name, center: last save time, right side: help hint
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Hafta - Weekly Tracker"
	rightText := "press ? for help"

	savedText := "not saved yet"
	if !props.SavedAt.IsZero() {
		savedText = "saved " + humanize.Time(props.SavedAt)
	}

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Background(lipgloss.Color(theme.StatusBarBg))

	leftRendered := style.Render(leftText)
	centerRendered := style.Render(savedText)
	rightRendered := style.Render(rightText)

	// Split the remaining space around the centered save time
	leftWidth := lipgloss.Width(leftRendered)
	centerWidth := lipgloss.Width(centerRendered)
	rightWidth := lipgloss.Width(rightRendered)

	gapTotal := props.Width - leftWidth - centerWidth - rightWidth
	if gapTotal < 2 {
		gapTotal = 2
	}
	leftGap := strings.Repeat(" ", gapTotal/2)
	rightGap := strings.Repeat(" ", gapTotal-gapTotal/2)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		leftRendered, leftGap, centerRendered, rightGap, rightRendered)
}
