package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/stats"
	"github.com/vergashev/hafta/internal/tui/theme"
)

const dayCardWidth = 22

// DayCardsProps configures the per-day task card strip.
type DayCardsProps struct {
	Items       []*models.Item
	Dates       [7]time.Time
	SelectedDay int
	Width       int
}

// RenderDayCards renders one card per weekday listing the tasks scheduled
// on it with their completion state and a done/total tally. Cards wrap
// into as many rows as the terminal width allows.
func RenderDayCards(props DayCardsProps) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Border)).
		Padding(0, 1).
		Width(dayCardWidth)
	selectedCardStyle := cardStyle.
		BorderForeground(lipgloss.Color(theme.SelectedBorder))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success))
	pendingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Frame))
	tallyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	cards := make([]string, 0, len(models.Weekdays))
	for i, day := range models.Weekdays {
		var b strings.Builder
		b.WriteString(titleStyle.Render(day.Title()))
		b.WriteString(dateStyle.Render(" " + props.Dates[i].Format("Jan 2")))
		b.WriteString("\n")

		scheduled := 0
		for _, it := range props.Items {
			if !it.AppliesOn(day) {
				continue
			}
			scheduled++
			name := truncate(it.Name, dayCardWidth-5)
			if it.DoneOn(day) {
				b.WriteString(doneStyle.Render(cellDone+" ") + pendingStyle.Render(name))
			} else {
				b.WriteString(pendingStyle.Render(cellPending + " " + name))
			}
			b.WriteString("\n")
		}
		if scheduled == 0 {
			b.WriteString(emptyStyle.Render("free day"))
			b.WriteString("\n")
		}

		done, total := stats.DayCounts(props.Items, day)
		b.WriteString(tallyStyle.Render(fmt.Sprintf("%d/%d done", done, total)))

		style := cardStyle
		if i == props.SelectedDay {
			style = selectedCardStyle
		}
		cards = append(cards, style.Render(b.String()))
	}

	// Wrap cards into rows that fit the terminal.
	perRow := props.Width / (dayCardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}
	rows := make([]string, 0, (len(cards)+perRow-1)/perRow)
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
