package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/vergashev/hafta/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.keys.ShowHelp, m.keys.Quit, "esc", "enter", " ":
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, nil
}

// helpMarkdown builds the help text from the configured key mappings.
func (m Model) helpMarkdown() string {
	k := m.keys
	return fmt.Sprintf(`# Hafta

Track your weekly habits and tasks. Marks, names and schedules are saved
to the tracker file after every change.

## Navigation

| Key | Action |
|-----|--------|
| %s / %s | previous / next item |
| %s / %s | previous / next day |
| %s | jump to today |
| %s | switch between habits and tasks |

## Items

| Key | Action |
|-----|--------|
| space | toggle the mark under the cursor |
| %s | add an item |
| %s | rename the selected item |
| %s | delete the selected item |
| c | clear the whole tab |
| %s | save the open dialog |

## Other

| Key | Action |
|-----|--------|
| %s | export the week to an Excel workbook |
| %s | toggle light/dark theme |
| %s | this help |
| %s | quit |
`,
		k.PrevItem, k.NextItem, k.PrevDay, k.NextDay, k.Today, k.SwitchKind,
		k.AddItem, k.RenameItem, k.DeleteItem, k.SaveForm,
		k.Export, k.ToggleTheme, k.ShowHelp, k.Quit)
}

// renderHelp renders the help markdown with glamour, caching the result
// until the width or theme changes.
func (m *Model) renderHelp(width int) string {
	if m.helpView != "" && m.helpWidth == width && m.helpPreset == m.cfg.ColorScheme.Preset {
		return m.helpView
	}

	style := "dark"
	if m.cfg.ColorScheme.Preset == "light" {
		style = "light"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return m.helpMarkdown()
	}
	out, err := renderer.Render(m.helpMarkdown())
	if err != nil {
		return m.helpMarkdown()
	}

	m.helpView = out
	m.helpWidth = width
	m.helpPreset = m.cfg.ColorScheme.Preset
	return out
}
