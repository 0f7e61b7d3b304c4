package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tracker"
	"github.com/vergashev/hafta/internal/tui/state"
)

// ============================================================================
// ADD FORM HANDLERS
// ============================================================================

// openAddForm builds a fresh huh form and switches into form mode.
func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formKind = m.uiState.Kind()
	m.formDays = nil
	m.formConfirm = true
	m.addForm = newAddItemForm(&m.formName, &m.formKind, &m.formDays, &m.formConfirm)
	m.uiState.SetMode(state.AddFormMode)
	return m, m.addForm.Init()
}

// newAddItemForm creates the huh form for adding an item. The form
// writes through the value pointers, matching the existing pattern.
func newAddItemForm(name *string, kind *models.Kind, days *[]models.Weekday, confirm *bool) *huh.Form {
	dayOptions := make([]huh.Option[models.Weekday], 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		dayOptions = append(dayOptions, huh.NewOption(day.Title(), day))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter item name...").
			CharLimit(models.MaxNameLength).
			Value(name),
		huh.NewSelect[models.Kind]().
			Key("kind").
			Title("Kind").
			Options(
				huh.NewOption("Habit (recurs every week)", models.KindHabit),
				huh.NewOption("Task (goal for this week)", models.KindTask),
			).
			Value(kind),
		huh.NewMultiSelect[models.Weekday]().
			Key("days").
			Title("Days").
			Description("Habits left empty track every day; tasks need at least one day").
			Options(dayOptions...).
			Validate(func(selected []models.Weekday) error {
				if *kind == models.KindTask && len(selected) == 0 {
					return tracker.ErrTaskNeedsDay
				}
				return nil
			}).
			Value(days),
		huh.NewConfirm().
			Key("confirm").
			Title("Add this item?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)).WithShowHelp(false)
}

// updateAddForm routes messages to the open form and submits or discards
// it when it finishes.
func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.addForm = nil
			m.uiState.SetMode(state.NormalMode)
			return m, nil
		case m.keys.SaveForm:
			// The save binding acts as confirm on whichever field is focused.
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		}
	}

	form, cmd := m.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.addForm = f
	}

	switch m.addForm.State {
	case huh.StateCompleted:
		if m.formConfirm {
			m.submitAddForm()
		}
		m.addForm = nil
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case huh.StateAborted:
		m.addForm = nil
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, cmd
}

// submitAddForm runs the add operation and reports the outcome.
func (m Model) submitAddForm() {
	item, err := m.app.Tracker.AddItem(tracker.AddItemRequest{
		Name: m.formName,
		Kind: m.formKind,
		Days: m.formDays,
	})
	switch {
	case err == nil:
		m.notificationState.Clear()
		m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Added '%s'", item.Name))
	case errors.Is(err, models.ErrDuplicateName):
		m.notificationState.Add(state.LevelWarning,
			fmt.Sprintf("An item named '%s' already exists", m.formName))
	case errors.Is(err, tracker.ErrEmptyName):
		m.notificationState.Add(state.LevelWarning, "Name cannot be empty")
	case errors.Is(err, tracker.ErrTaskNeedsDay):
		m.notificationState.Add(state.LevelWarning, "Pick at least one day for a task")
	case errors.Is(err, store.ErrIO):
		m.notificationState.Add(state.LevelWarning,
			"Added, but saving failed; the item is kept in memory")
	default:
		m.notificationState.Add(state.LevelError, fmt.Sprintf("Failed to add item: %v", err))
	}
}
