package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/stats"
	"github.com/vergashev/hafta/internal/tui/components"
	"github.com/vergashev/hafta/internal/tui/state"
	"github.com/vergashev/hafta/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() string {
	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	switch m.uiState.Mode() {
	case state.AddFormMode:
		return m.viewAddForm()
	case state.RenameMode:
		return m.viewRenameDialog()
	case state.DeleteConfirmMode:
		return m.viewDeleteConfirm()
	case state.ClearConfirmMode:
		return m.viewClearConfirm()
	case state.HelpMode:
		return m.viewHelp()
	}
	return m.viewDashboard()
}

// viewDashboard renders the normal-mode screen: header, notification
// banner, weekly chart, kind tabs, the item grid and the status bar.
func (m Model) viewDashboard() string {
	doc := m.app.Tracker.Document()
	summary := m.app.Tracker.Summary()
	dates := stats.WeekDates(m.now())
	today := models.WeekdayOf(m.now()).Index()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		HeaderStyle.Render("Hafta"),
		WeekRangeStyle.Render(fmt.Sprintf("  %s – %s  ",
			dates[0].Format("Jan 2"), dates[6].Format("Jan 2, 2006"))),
		PercentStyle.Render("Week: "+stats.FormatPercent(summary.Percent)),
	)

	sections := []string{header, ""}

	if n, ok := m.notificationState.Latest(); ok {
		sections = append(sections, components.RenderNotification(n), "")
	}

	sections = append(sections, components.RenderWeekChart(components.WeekChartProps{
		Summary:  summary,
		Today:    today,
		BarWidth: chartBarWidth(m.uiState.Width()),
	}), "")

	sections = append(sections, m.viewTabs(), "")

	sections = append(sections, components.RenderItemGrid(components.ItemGridProps{
		Items:       m.currentItems(),
		SelectedRow: m.uiState.SelectedRow(),
		SelectedDay: m.uiState.SelectedDay(),
	}))

	if m.uiState.Kind() == models.KindTask {
		sections = append(sections, "", components.RenderDayCards(components.DayCardsProps{
			Items:       m.app.Tracker.Items(models.KindTask),
			Dates:       dates,
			SelectedDay: m.uiState.SelectedDay(),
			Width:       m.uiState.Width(),
		}))
	}

	sections = append(sections, "", components.RenderStatusBar(components.StatusBarProps{
		Width:   m.uiState.Width(),
		SavedAt: doc.SavedAt,
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewTabs renders the habit/task tab strip with item counts.
func (m Model) viewTabs() string {
	habits := fmt.Sprintf("Habits (%d)", len(m.app.Tracker.Items(models.KindHabit)))
	tasks := fmt.Sprintf("Tasks (%d)", len(m.app.Tracker.Items(models.KindTask)))

	if m.uiState.Kind() == models.KindHabit {
		return TabActiveStyle.Render(habits) + TabStyle.Render(tasks)
	}
	return TabStyle.Render(habits) + TabActiveStyle.Render(tasks)
}

func (m Model) viewAddForm() string {
	if m.addForm == nil {
		return m.viewDashboard()
	}
	formBox := FormBoxStyle.
		Width(formBoxWidth(m.uiState.Width())).
		Render(PromptStyle.Render("New item") + "\n\n" + m.addForm.View())
	return m.place(formBox)
}

func (m Model) viewRenameDialog() string {
	content := PromptStyle.Render(m.inputState.Prompt) +
		"\n> " + m.inputState.Buffer + "_" +
		"\n\n" + HintStyle.Render("enter to save, esc to cancel")
	return m.place(DialogBoxStyle.Width(formBoxWidth(m.uiState.Width())).Render(content))
}

func (m Model) viewDeleteConfirm() string {
	item := m.currentItem()
	if item == nil {
		return m.viewDashboard()
	}
	content := PromptStyle.Render(fmt.Sprintf("Delete '%s'?", item.Name)) +
		"\n" + HintStyle.Render("Its marks for this week go with it.") +
		"\n\n" + HintStyle.Render("y to delete, n to cancel")
	return m.place(ConfirmBoxStyle.Render(content))
}

func (m Model) viewClearConfirm() string {
	kind := m.uiState.Kind()
	count := len(m.currentItems())
	content := PromptStyle.Render(fmt.Sprintf("Remove all %d %ss?", count, kind)) +
		"\n\n" + HintStyle.Render("y to clear, n to cancel")
	return m.place(ConfirmBoxStyle.Render(content))
}

func (m Model) viewHelp() string {
	help := m.helpView
	if help == "" {
		help = m.renderHelp(helpViewWidth(m.uiState.Width()))
	}
	return m.place(HelpBoxStyle.Render(help))
}

// place centers a dialog box in the terminal.
func (m Model) place(box string) string {
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(theme.Background)),
	)
}

func chartBarWidth(termWidth int) int {
	w := termWidth - 24
	if w > 40 {
		return 40
	}
	return w
}

func formBoxWidth(termWidth int) int {
	w := termWidth / 2
	if w < 40 {
		w = 40
	}
	if w > termWidth-4 {
		w = termWidth - 4
	}
	return w
}

func helpViewWidth(termWidth int) int {
	w := termWidth - 8
	if w > 72 {
		return 72
	}
	if w < 20 {
		return 20
	}
	return w
}
