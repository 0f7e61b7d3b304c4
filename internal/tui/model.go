// Package tui implements the interactive weekly dashboard on Bubble Tea.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vergashev/hafta/internal/app"
	"github.com/vergashev/hafta/internal/config"
	"github.com/vergashev/hafta/internal/config/colors"
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/tui/state"
	"github.com/vergashev/hafta/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	app  *app.App
	cfg  *config.Config
	keys config.KeyMappings
	now  func() time.Time

	uiState           *state.UIState
	inputState        *state.InputState
	notificationState *state.NotificationState

	// Add-item form state. The form writes straight into the value
	// fields; they are read once on submit.
	addForm     *huh.Form
	formName    string
	formKind    models.Kind
	formDays    []models.Weekday
	formConfirm bool

	// Rendered help screen, cached per width and theme preset.
	helpView   string
	helpWidth  int
	helpPreset string
}

// InitialModel creates the TUI model over an initialized application
// container. Startup conditions (first run, corrupt tracker file) are
// surfaced as notifications rather than terminating the program.
func InitialModel(application *app.App) Model {
	now := time.Now
	m := Model{
		app:               application,
		cfg:               application.Config(),
		keys:              application.Config().KeyMappings,
		now:               now,
		uiState:           state.NewUIState(models.WeekdayOf(now())),
		inputState:        state.NewInputState(),
		notificationState: state.NewNotificationState(),
	}

	if application.FirstRun {
		m.notificationState.Add(state.LevelInfo, "Welcome! Seeded the default habit list to get you started.")
	}
	if application.LoadErr != nil {
		m.notificationState.Add(state.LevelError,
			fmt.Sprintf("Tracker file could not be read, starting empty: %v", application.LoadErr))
	}
	return m
}

// Run starts the dashboard and blocks until the user quits.
func Run(application *app.App) error {
	theme.Init(application.Config().ColorScheme)
	initStyles()

	p := tea.NewProgram(InitialModel(application), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run the interface: %w", err)
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// currentItems returns the items on the active kind tab.
func (m Model) currentItems() []*models.Item {
	return m.app.Tracker.Items(m.uiState.Kind())
}

// currentItem returns the selected item, or nil when the tab is empty.
func (m Model) currentItem() *models.Item {
	items := m.currentItems()
	if len(items) == 0 {
		return nil
	}
	row := m.uiState.SelectedRow()
	if row >= len(items) {
		row = len(items) - 1
	}
	return items[row]
}

// clampSelection keeps the selected row inside the active tab after
// items are added or removed.
func (m Model) clampSelection() {
	count := len(m.currentItems())
	if count == 0 {
		m.uiState.SetSelectedRow(0)
		return
	}
	if m.uiState.SelectedRow() >= count {
		m.uiState.SetSelectedRow(count - 1)
	}
}

// toggleTheme switches between the light and dark presets, rebuilds the
// styles and persists the choice.
func (m *Model) toggleTheme() {
	preset := "dark"
	if m.cfg.ColorScheme.Preset != "light" {
		preset = "light"
	}
	m.cfg.ColorScheme = *colors.GetPreset(preset)
	theme.Init(m.cfg.ColorScheme)
	initStyles()
	m.helpView = "" // force re-render with the new style

	if err := m.cfg.Save(); err != nil {
		m.notificationState.Add(state.LevelWarning,
			fmt.Sprintf("Theme switched but not saved: %v", err))
		return
	}
	m.notificationState.Add(state.LevelInfo, "Switched to the "+preset+" theme")
}
