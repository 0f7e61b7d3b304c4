package state

import "github.com/vergashev/hafta/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode       Mode = iota // Default navigation mode
	AddFormMode                  // Creating a new item with huh
	RenameMode                   // Renaming the selected item
	DeleteConfirmMode            // Confirming item deletion
	ClearConfirmMode             // Confirming removal of a whole kind
	HelpMode                     // Displaying help screen
)

// UIState manages the user interface state.
// This includes navigation (row/day selection), the visible kind tab,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedRow is the index of the currently selected item within the kind tab
	selectedRow int

	// selectedDay is the week-order index of the currently selected day
	selectedDay int

	// kind is the item kind shown on the active tab
	kind models.Kind

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState starting on the habits tab.
// The selected day starts on today so marking is one keypress away.
func NewUIState(today models.Weekday) *UIState {
	return &UIState{
		selectedRow: 0,
		selectedDay: today.Index(),
		kind:        models.KindHabit,
		mode:        NormalMode,
	}
}

// SelectedRow returns the index of the currently selected item.
func (s *UIState) SelectedRow() int {
	return s.selectedRow
}

// SetSelectedRow updates the selected item index.
func (s *UIState) SetSelectedRow(index int) {
	s.selectedRow = index
}

// SelectedDay returns the week-order index of the selected day.
func (s *UIState) SelectedDay() int {
	return s.selectedDay
}

// SetSelectedDay updates the selected day, clamping to the week.
func (s *UIState) SetSelectedDay(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(models.Weekdays) {
		index = len(models.Weekdays) - 1
	}
	s.selectedDay = index
}

// Day returns the selected day as a Weekday.
func (s *UIState) Day() models.Weekday {
	return models.Weekdays[s.selectedDay]
}

// Kind returns the kind shown on the active tab.
func (s *UIState) Kind() models.Kind {
	return s.kind
}

// ToggleKind switches between the habits and tasks tabs.
func (s *UIState) ToggleKind() {
	if s.kind == models.KindHabit {
		s.kind = models.KindTask
	} else {
		s.kind = models.KindHabit
	}
	s.selectedRow = 0
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
