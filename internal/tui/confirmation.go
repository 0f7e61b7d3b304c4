package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleDeleteConfirm handles item deletion confirmation.
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDeleteItem()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmDeleteItem performs the actual deletion. The item's marks go
// with it, so the weekly figures stop counting it immediately.
func (m Model) confirmDeleteItem() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item != nil {
		err := m.app.Tracker.DeleteItem(item.ID)
		switch {
		case err == nil:
			m.notificationState.Clear()
			m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Deleted '%s'", item.Name))
		case errors.Is(err, store.ErrIO):
			m.notificationState.Add(state.LevelWarning,
				"Deleted, but saving failed; the change is kept in memory")
		default:
			m.notificationState.Add(state.LevelError, fmt.Sprintf("Failed to delete item: %v", err))
		}
		m.clampSelection()
	}
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// handleClearConfirm handles confirmation for clearing a whole kind tab.
func (m Model) handleClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.confirmClearKind()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// confirmClearKind removes every item on the active kind tab.
func (m Model) confirmClearKind() (tea.Model, tea.Cmd) {
	kind := m.uiState.Kind()
	removed, err := m.app.Tracker.ClearItems(kind)
	switch {
	case err == nil:
		m.notificationState.Clear()
		m.notificationState.Add(state.LevelInfo,
			fmt.Sprintf("Removed %d %ss", removed, kind))
	case errors.Is(err, store.ErrIO):
		m.notificationState.Add(state.LevelWarning,
			"Cleared, but saving failed; the change is kept in memory")
	default:
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Failed to clear %ss: %v", kind, err))
	}
	m.uiState.SetSelectedRow(0)
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}
