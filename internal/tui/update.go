package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vergashev/hafta/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case exportResultMsg:
		if msg.err != nil {
			m.notificationState.Add(state.LevelError,
				fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.notificationState.Add(state.LevelInfo, "Exported to "+msg.path)
		}
		return m, nil
	}

	// The add form consumes every message type while it is open, not
	// just key presses.
	if m.uiState.Mode() == state.AddFormMode {
		return m.updateAddForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.RenameMode:
		return m.handleRenameMode(keyMsg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.ClearConfirmMode:
		return m.handleClearConfirm(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}
