package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode handles keyboard input while no dialog is open.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch msg.String() {
	case keys.Quit, "ctrl+c":
		return m, tea.Quit

	// Navigation
	case keys.NextItem, "down":
		items := m.currentItems()
		if m.uiState.SelectedRow() < len(items)-1 {
			m.uiState.SetSelectedRow(m.uiState.SelectedRow() + 1)
		}
		return m, nil
	case keys.PrevItem, "up":
		if m.uiState.SelectedRow() > 0 {
			m.uiState.SetSelectedRow(m.uiState.SelectedRow() - 1)
		}
		return m, nil
	case keys.NextDay, "right":
		m.uiState.SetSelectedDay(m.uiState.SelectedDay() + 1)
		return m, nil
	case keys.PrevDay, "left":
		m.uiState.SetSelectedDay(m.uiState.SelectedDay() - 1)
		return m, nil
	case keys.Today:
		m.uiState.SetSelectedDay(models.WeekdayOf(m.now()).Index())
		return m, nil
	case keys.SwitchKind:
		m.uiState.ToggleKind()
		return m, nil

	// Mutations
	case keys.ToggleMark:
		return m.toggleCurrentMark()
	case keys.AddItem:
		return m.openAddForm()
	case keys.RenameItem:
		return m.openRenameInput()
	case keys.DeleteItem:
		if m.currentItem() != nil {
			m.uiState.SetMode(state.DeleteConfirmMode)
		}
		return m, nil
	case "c":
		if len(m.currentItems()) > 0 {
			m.uiState.SetMode(state.ClearConfirmMode)
		}
		return m, nil

	// Other
	case keys.Export:
		return m, m.exportCmd()
	case keys.ToggleTheme:
		m.toggleTheme()
		return m, nil
	case keys.ShowHelp:
		// Render (and cache) the help screen on entry, not on every frame.
		m.renderHelp(helpViewWidth(m.uiState.Width()))
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	}
	return m, nil
}

// toggleCurrentMark flips the selected item's mark on the selected day.
func (m Model) toggleCurrentMark() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}

	_, err := m.app.Tracker.ToggleMark(item.ID, m.uiState.Day())
	switch {
	case err == nil:
		m.notificationState.Clear()
	case errors.Is(err, models.ErrDayNotTracked):
		m.notificationState.Add(state.LevelWarning,
			fmt.Sprintf("'%s' is not tracked on %s", item.Name, m.uiState.Day().Title()))
	case errors.Is(err, store.ErrIO):
		// The mark is kept in memory; a later save will flush it.
		m.notificationState.Add(state.LevelWarning,
			"Marked, but saving failed; the change is kept in memory")
	default:
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Failed to mark item: %v", err))
	}
	return m, nil
}
