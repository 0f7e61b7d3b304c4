package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/stats"
	"github.com/vergashev/hafta/internal/tui/theme"
)

// WeekChartProps configures the weekly completion chart.
type WeekChartProps struct {
	Summary  stats.WeekSummary
	Today    int // week-order index of today's day, -1 to disable
	BarWidth int
}

// RenderWeekChart renders one horizontal bar per weekday: the day label,
// a filled bar proportional to the daily percentage, the percentage and
// the raw done/scheduled counts. Today's row is highlighted.
func RenderWeekChart(props WeekChartProps) string {
	barWidth := props.BarWidth
	if barWidth < 10 {
		barWidth = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	todayStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Frame))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	rows := make([]string, 0, len(props.Summary.Days))
	for i, day := range props.Summary.Days {
		filled := int(day.Percent/100*float64(barWidth) + 0.5)
		if filled > barWidth {
			filled = barWidth
		}
		bar := filledStyle.Render(strings.Repeat("█", filled)) +
			emptyStyle.Render(strings.Repeat("░", barWidth-filled))

		label := labelStyle.Render(day.Day.Short())
		if i == props.Today {
			label = todayStyle.Render(day.Day.Short())
		}

		rows = append(rows, fmt.Sprintf("%s %s %6.2f%% %s",
			label, bar, day.Percent,
			countStyle.Render(fmt.Sprintf("(%d/%d)", day.Done, day.Total))))
	}
	return strings.Join(rows, "\n")
}
