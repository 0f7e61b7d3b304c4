package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vergashev/hafta/internal/app"
	"github.com/vergashev/hafta/internal/config"
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/testutil"
	"github.com/vergashev/hafta/internal/tracker"
	"github.com/vergashev/hafta/internal/tui/state"
	"github.com/vergashev/hafta/internal/tui/theme"
)

// newTestModel builds a model over a fresh app seeded in a temp dir.
func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	theme.Init(cfg.ColorScheme)
	initStyles()

	application, err := app.New(cfg,
		app.WithStorePath(testutil.TempTrackerPath(t)),
		app.WithClock(func() time.Time { return testutil.TestClock }),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = application.Close() })

	m := InitialModel(application)
	m.now = func() time.Time { return testutil.TestClock }
	m.notificationState.Clear()

	// Give the model a terminal before driving keys.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func keyPress(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestNavigationMovesSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	if got := m.uiState.SelectedRow(); got != 0 {
		t.Fatalf("Expected selection to start at row 0, got %d", got)
	}

	m = keyPress(t, m, "j", "j")
	if got := m.uiState.SelectedRow(); got != 2 {
		t.Errorf("Expected row 2 after pressing j twice, got %d", got)
	}

	m = keyPress(t, m, "k")
	if got := m.uiState.SelectedRow(); got != 1 {
		t.Errorf("Expected row 1 after pressing k, got %d", got)
	}

	// The selection clamps at the last item.
	for range m.currentItems() {
		m = keyPress(t, m, "j")
	}
	if got, want := m.uiState.SelectedRow(), len(m.currentItems())-1; got != want {
		t.Errorf("Expected selection clamped to row %d, got %d", want, got)
	}
}

func TestDayNavigationAndToday(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	// TestClock is a Monday, so the cursor starts on day 0.
	if got := m.uiState.SelectedDay(); got != 0 {
		t.Fatalf("Expected Monday selected on start, got index %d", got)
	}

	m = keyPress(t, m, "l", "l", "l")
	if got := m.uiState.Day(); got != models.Thursday {
		t.Errorf("Expected Thursday after three l presses, got %s", got)
	}

	m = keyPress(t, m, "t")
	if got := m.uiState.Day(); got != models.Monday {
		t.Errorf("Expected t to jump back to today (Monday), got %s", got)
	}

	// The cursor never leaves the week.
	m = keyPress(t, m, "h", "h")
	if got := m.uiState.SelectedDay(); got != 0 {
		t.Errorf("Expected day clamped at Monday, got index %d", got)
	}
}

func TestToggleMarkPersists(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	item := m.currentItem()

	m = keyPress(t, m, " ")
	if !item.DoneOn(models.Monday) {
		t.Error("Expected space to mark the selected item done on Monday")
	}

	m = keyPress(t, m, " ")
	if item.DoneOn(models.Monday) {
		t.Error("Expected a second space to unmark the item")
	}
}

func TestSwitchKindResetsSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m = keyPress(t, m, "j", "tab")

	if got := m.uiState.Kind(); got != models.KindTask {
		t.Errorf("Expected tab to switch to the task tab, got %s", got)
	}
	if got := m.uiState.SelectedRow(); got != 0 {
		t.Errorf("Expected selection reset on tab switch, got row %d", got)
	}
}

func TestRenameFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	item := m.currentItem()
	originalID := item.ID

	m = keyPress(t, m, "r")
	if got := m.uiState.Mode(); got != state.RenameMode {
		t.Fatalf("Expected rename mode, got %v", got)
	}
	if got := m.inputState.Buffer; got != item.Name {
		t.Errorf("Expected the buffer seeded with %q, got %q", item.Name, got)
	}

	// Wipe the buffer and type a new name.
	for range m.inputState.Buffer {
		m = keyPress(t, m, "backspace")
	}
	m = keyPress(t, m, "J", "o", "g", "enter")

	if got := m.uiState.Mode(); got != state.NormalMode {
		t.Fatalf("Expected normal mode after enter, got %v", got)
	}

	renamed, err := m.app.Tracker.Item(originalID)
	if err != nil {
		t.Fatalf("Expected the item to keep its ID across rename: %v", err)
	}
	if renamed.Name != "Jog" {
		t.Errorf("Expected the item renamed to Jog, got %q", renamed.Name)
	}
}

func TestRenameEscCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	item := m.currentItem()
	original := item.Name

	m = keyPress(t, m, "r", "x", "esc")
	if got := m.uiState.Mode(); got != state.NormalMode {
		t.Fatalf("Expected normal mode after esc, got %v", got)
	}
	if item.Name != original {
		t.Errorf("Expected the name unchanged after esc, got %q", item.Name)
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	item := m.currentItem()
	before := len(m.currentItems())

	// n cancels.
	m = keyPress(t, m, "d")
	if got := m.uiState.Mode(); got != state.DeleteConfirmMode {
		t.Fatalf("Expected delete confirm mode, got %v", got)
	}
	m = keyPress(t, m, "n")
	if got := len(m.currentItems()); got != before {
		t.Errorf("Expected no deletion after n, got %d items", got)
	}

	// y deletes.
	m = keyPress(t, m, "d", "y")
	if got := len(m.currentItems()); got != before-1 {
		t.Errorf("Expected %d items after deletion, got %d", before-1, got)
	}
	if _, err := m.app.Tracker.Item(item.ID); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected the deleted item to be gone, got %v", err)
	}
}

func TestClearConfirmFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = keyPress(t, m, "c")
	if got := m.uiState.Mode(); got != state.ClearConfirmMode {
		t.Fatalf("Expected clear confirm mode, got %v", got)
	}

	m = keyPress(t, m, "y")
	if got := len(m.app.Tracker.Items(models.KindHabit)); got != 0 {
		t.Errorf("Expected the habit tab cleared, got %d items", got)
	}
	if got := m.uiState.Mode(); got != state.NormalMode {
		t.Errorf("Expected normal mode after clearing, got %v", got)
	}
}

func TestRenameSaveKeyConfirms(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	item := m.currentItem()
	originalID := item.ID

	m = keyPress(t, m, "r")
	for range m.inputState.Buffer {
		m = keyPress(t, m, "backspace")
	}
	m = keyPress(t, m, "J", "o", "g", "ctrl+s")

	if got := m.uiState.Mode(); got != state.NormalMode {
		t.Fatalf("Expected the save key to close the dialog, got %v", got)
	}
	renamed, err := m.app.Tracker.Item(originalID)
	if err != nil {
		t.Fatalf("Expected the item to survive the rename: %v", err)
	}
	if renamed.Name != "Jog" {
		t.Errorf("Expected the save key to apply the rename, got %q", renamed.Name)
	}
}

func TestAddFormOpensAndEscCloses(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = keyPress(t, m, "a")
	if got := m.uiState.Mode(); got != state.AddFormMode {
		t.Fatalf("Expected add form mode, got %v", got)
	}
	if m.addForm == nil {
		t.Fatal("Expected the add form to be built")
	}

	m = keyPress(t, m, "esc")
	if got := m.uiState.Mode(); got != state.NormalMode {
		t.Errorf("Expected normal mode after esc, got %v", got)
	}
	if m.addForm != nil {
		t.Error("Expected the form discarded after esc")
	}
}

func TestAddFormRejectsDaylessTask(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	before := len(m.app.Tracker.Items(models.KindTask))

	m.formName = "Dentist"
	m.formKind = models.KindTask
	m.formDays = nil
	m.submitAddForm()

	n, ok := m.notificationState.Latest()
	if !ok || n.Level != state.LevelWarning {
		t.Fatalf("Expected a warning for a task without days, got %+v", n)
	}
	if got := len(m.app.Tracker.Items(models.KindTask)); got != before {
		t.Errorf("Expected no task added, got %d", got)
	}
}

func TestHelpModeToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m = keyPress(t, m, "?")
	if got := m.uiState.Mode(); got != state.HelpMode {
		t.Fatalf("Expected help mode, got %v", got)
	}
	if m.helpView == "" {
		t.Error("Expected the help screen rendered on entry")
	}

	m = keyPress(t, m, "esc")
	if got := m.uiState.Mode(); got != state.NormalMode {
		t.Errorf("Expected normal mode after esc, got %v", got)
	}
}

func TestExportResultNotifications(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	updated, _ := m.Update(exportResultMsg{path: "habits_2025-06-02.xlsx"})
	m = updated.(Model)
	n, ok := m.notificationState.Latest()
	if !ok || n.Level != state.LevelInfo {
		t.Errorf("Expected an info notification after a successful export, got %+v", n)
	}
	if !strings.Contains(n.Message, "habits_2025-06-02.xlsx") {
		t.Errorf("Expected the workbook path in the notification, got %q", n.Message)
	}

	updated, _ = m.Update(exportResultMsg{err: errors.New("disk full")})
	m = updated.(Model)
	if n, _ := m.notificationState.Latest(); n.Level != state.LevelError {
		t.Errorf("Expected an error notification after a failed export, got %+v", n)
	}
}

func TestMarkOnUntrackedDayWarns(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	if _, err := m.app.Tracker.AddItem(tracker.AddItemRequest{
		Name: "Standup",
		Kind: models.KindTask,
		Days: []models.Weekday{models.Tuesday},
	}); err != nil {
		t.Fatalf("Failed to add task: %v", err)
	}

	// Switch to the task tab; the cursor is still on Monday.
	m = keyPress(t, m, "tab", " ")

	n, ok := m.notificationState.Latest()
	if !ok || n.Level != state.LevelWarning {
		t.Errorf("Expected a warning for marking an untracked day, got %+v", n)
	}
}

func TestViewRendersDashboard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "Hafta") {
		t.Error("Expected the header in the dashboard view")
	}
	if !strings.Contains(view, "Habits") || !strings.Contains(view, "Tasks") {
		t.Error("Expected both kind tabs in the dashboard view")
	}
	for _, habit := range models.DefaultHabits {
		if !strings.Contains(view, habit) {
			t.Errorf("Expected seeded habit %q in the dashboard view", habit)
		}
	}
}
