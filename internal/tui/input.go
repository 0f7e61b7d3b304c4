package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tracker"
	"github.com/vergashev/hafta/internal/tui/state"
)

// ============================================================================
// RENAME INPUT HANDLERS
// ============================================================================

// openRenameInput seeds the input buffer with the selected item's name
// and switches into rename mode.
func (m Model) openRenameInput() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		return m, nil
	}

	m.inputState.Prompt = "New name:"
	m.inputState.Buffer = item.Name
	m.inputState.InitialBuffer = item.Name
	m.inputState.TargetID = item.ID
	m.uiState.SetMode(state.RenameMode)
	return m, nil
}

// handleRenameMode handles keyboard input while the rename dialog is open.
func (m Model) handleRenameMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputState.Clear()
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case "enter", m.keys.SaveForm:
		return m.confirmRename()

	case "backspace":
		m.inputState.Backspace()
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		for _, r := range msg.Runes {
			m.inputState.AppendChar(r)
		}
		if msg.Type == tea.KeySpace {
			m.inputState.AppendChar(' ')
		}
	}
	return m, nil
}

// confirmRename performs the rename. A blank or unchanged buffer simply
// closes the dialog.
func (m Model) confirmRename() (tea.Model, tea.Cmd) {
	defer func() {
		m.inputState.Clear()
		m.uiState.SetMode(state.NormalMode)
	}()

	if m.inputState.IsEmpty() || !m.inputState.HasChanges() {
		return m, nil
	}

	err := m.app.Tracker.RenameItem(tracker.RenameItemRequest{
		ID:      m.inputState.TargetID,
		NewName: m.inputState.TrimmedBuffer(),
	})
	switch {
	case err == nil:
		m.notificationState.Clear()
	case errors.Is(err, models.ErrDuplicateName):
		m.notificationState.Add(state.LevelWarning,
			fmt.Sprintf("An item named '%s' already exists", m.inputState.TrimmedBuffer()))
	case errors.Is(err, store.ErrIO):
		m.notificationState.Add(state.LevelWarning,
			"Renamed, but saving failed; the change is kept in memory")
	default:
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Failed to rename item: %v", err))
	}
	return m, nil
}
