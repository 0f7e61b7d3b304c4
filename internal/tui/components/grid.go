package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/stats"
	"github.com/vergashev/hafta/internal/tui/theme"
)

// Grid cell glyphs.
const (
	cellDone    = "✓"
	cellPending = "✗"
	cellSkipped = "·"
)

const (
	nameColumnWidth  = 24
	dayColumnWidth   = 5
	progressBarWidth = 12
)

// ItemGridProps configures the weekly item grid.
type ItemGridProps struct {
	Items       []*models.Item
	SelectedRow int
	SelectedDay int
}

// RenderItemGrid renders one row per item: a selection marker, the name,
// a checkbox cell per weekday and a progress bar over the item's
// scheduled days. The cell under the cursor is highlighted.
func RenderItemGrid(props ItemGridProps) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Subtle))
	headerSelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	nameSelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success))
	pendingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	skippedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Frame))
	cursorStyle := lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(theme.SelectedBg))
	percentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	markerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	var b strings.Builder

	// Header row: day abbreviations, selected day highlighted.
	b.WriteString(strings.Repeat(" ", nameColumnWidth+2))
	for i, day := range models.Weekdays {
		cell := padCenter(day.Short(), dayColumnWidth)
		if i == props.SelectedDay {
			b.WriteString(headerSelStyle.Render(cell))
		} else {
			b.WriteString(headerStyle.Render(cell))
		}
	}
	b.WriteString("\n")

	if len(props.Items) == 0 {
		b.WriteString(pendingStyle.Render("  Nothing here yet. Press 'a' to add an item."))
		return b.String()
	}

	bar := progress.New(
		progress.WithScaledGradient(theme.Accent, theme.AccentLight),
		progress.WithWidth(progressBarWidth),
		progress.WithoutPercentage(),
	)

	for row, it := range props.Items {
		marker := "  "
		if row == props.SelectedRow {
			marker = markerStyle.Render("❯ ")
		}
		b.WriteString(marker)

		name := truncate(it.Name, nameColumnWidth)
		if row == props.SelectedRow {
			b.WriteString(nameSelStyle.Render(padRight(name, nameColumnWidth)))
		} else {
			b.WriteString(nameStyle.Render(padRight(name, nameColumnWidth)))
		}

		for i, day := range models.Weekdays {
			var glyph string
			var style lipgloss.Style
			switch {
			case !it.AppliesOn(day):
				glyph, style = cellSkipped, skippedStyle
			case it.DoneOn(day):
				glyph, style = cellDone, doneStyle
			default:
				glyph, style = cellPending, pendingStyle
			}
			cell := padCenter(glyph, dayColumnWidth)
			if row == props.SelectedRow && i == props.SelectedDay {
				b.WriteString(cursorStyle.Render(cell))
			} else {
				b.WriteString(style.Render(cell))
			}
		}

		done, total := stats.ItemCounts(it)
		frac := 0.0
		if total > 0 {
			frac = float64(done) / float64(total)
		}
		b.WriteString(" ")
		b.WriteString(bar.ViewAs(frac))
		b.WriteString(percentStyle.Render(fmt.Sprintf(" %3.0f%%", stats.ItemPercent(it))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

func padRight(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padCenter(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}
