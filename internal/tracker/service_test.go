package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
)

var testClock = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService creates a service over an empty document backed by a
// store in a temp directory
func setupTestService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "tracker.json"))
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	svc := NewService(st, models.NewDocument(), WithClock(func() time.Time { return testClock }))
	return svc, st
}

// reload reads the tracker file back through the store
func reload(t *testing.T, st *store.Store) *models.Document {
	t.Helper()
	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Failed to reload tracker file: %v", err)
	}
	return doc
}

// ============================================================================
// AddItem Tests
// ============================================================================

func TestAddItem(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	item, err := svc.AddItem(AddItemRequest{Name: "  Reading ", Kind: models.KindHabit})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item == nil {
		t.Fatal("Expected an item, got nil")
	}
	if item.ID == "" {
		t.Error("Expected item ID to be set")
	}
	if item.Name != "Reading" {
		t.Errorf("Expected trimmed name 'Reading', got %q", item.Name)
	}
	if !item.CreatedAt.Equal(testClock) {
		t.Errorf("Expected CreatedAt %v, got %v", testClock, item.CreatedAt)
	}

	saved := reload(t, st)
	if len(saved.Items) != 1 || saved.Items[0].Name != "Reading" {
		t.Error("Added item should be persisted")
	}
	if !saved.SavedAt.Equal(testClock) {
		t.Errorf("Mutation should stamp SavedAt, got %v", saved.SavedAt)
	}
}

func TestAddItem_WithDays(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	item, err := svc.AddItem(AddItemRequest{
		Name: "Standup",
		Kind: models.KindTask,
		Days: []models.Weekday{models.Friday, models.Monday, models.Monday},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(item.Days) != 2 || item.Days[0] != models.Monday || item.Days[1] != models.Friday {
		t.Errorf("Days should be normalized into week order, got %v", item.Days)
	}
}

func TestAddItem_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	tests := []struct {
		name    string
		req     AddItemRequest
		wantErr error
	}{
		{"empty name", AddItemRequest{Name: "", Kind: models.KindHabit}, ErrEmptyName},
		{"whitespace name", AddItemRequest{Name: "   ", Kind: models.KindHabit}, ErrEmptyName},
		{"name too long", AddItemRequest{Name: strings.Repeat("x", 256), Kind: models.KindHabit}, ErrNameTooLong},
		{"unknown kind", AddItemRequest{Name: "Reading", Kind: "chore"}, ErrInvalidKind},
		{"unknown day", AddItemRequest{Name: "Reading", Kind: models.KindTask, Days: []models.Weekday{"someday"}}, ErrInvalidDay},
		{"task without days", AddItemRequest{Name: "Dentist", Kind: models.KindTask}, ErrTaskNeedsDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddItem(tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if len(svc.Document().Items) != 0 {
		t.Error("Rejected requests should not touch the document")
	}
}

func TestAddItem_DuplicateName(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	if _, err := svc.AddItem(AddItemRequest{Name: "Reading", Kind: models.KindHabit}); err != nil {
		t.Fatalf("First add failed: %v", err)
	}
	_, err := svc.AddItem(AddItemRequest{Name: "reading", Kind: models.KindTask, Days: []models.Weekday{models.Monday}})
	if !errors.Is(err, models.ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestAddItem_TaskNeedsDay(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	// A dayless task would apply every day, which is the habit shape.
	_, err := svc.AddItem(AddItemRequest{Name: "Dentist", Kind: models.KindTask})
	if !errors.Is(err, ErrTaskNeedsDay) {
		t.Fatalf("Expected ErrTaskNeedsDay, got %v", err)
	}

	saved := reload(t, st)
	if len(saved.Items) != 0 {
		t.Errorf("Rejected task should not be persisted, found %d items", len(saved.Items))
	}

	// Habits keep the empty-days default.
	habit, err := svc.AddItem(AddItemRequest{Name: "Dentist", Kind: models.KindHabit})
	if err != nil {
		t.Fatalf("Expected dayless habit to be accepted: %v", err)
	}
	if len(habit.Days) != 0 {
		t.Errorf("Expected habit to keep the every-day default, got %v", habit.Days)
	}
}

// ============================================================================
// RenameItem Tests
// ============================================================================

func TestRenameItem(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	item, err := svc.AddItem(AddItemRequest{Name: "Gym", Kind: models.KindHabit})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.SetMark(SetMarkRequest{ID: item.ID, Day: models.Monday, Done: true}); err != nil {
		t.Fatalf("SetMark failed: %v", err)
	}

	if err := svc.RenameItem(RenameItemRequest{ID: item.ID, NewName: "Morning gym"}); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	saved := reload(t, st)
	renamed, err := saved.Find(item.ID)
	if err != nil {
		t.Fatal("Renamed item should keep its ID")
	}
	if renamed.Name != "Morning gym" {
		t.Errorf("Expected 'Morning gym', got %q", renamed.Name)
	}
	if !renamed.DoneOn(models.Monday) {
		t.Error("Rename should preserve recorded marks")
	}
}

func TestRenameItem_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	item, err := svc.AddItem(AddItemRequest{Name: "Gym", Kind: models.KindHabit})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.RenameItem(RenameItemRequest{ID: "", NewName: "Anything"}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("Expected ErrEmptyID, got %v", err)
	}
	if err := svc.RenameItem(RenameItemRequest{ID: item.ID, NewName: " "}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := svc.RenameItem(RenameItemRequest{ID: "missing", NewName: "Anything"}); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

// ============================================================================
// DeleteItem Tests
// ============================================================================

func TestDeleteItem(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	item, err := svc.AddItem(AddItemRequest{Name: "Gym", Kind: models.KindHabit})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.DeleteItem(item.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if len(reload(t, st).Items) != 0 {
		t.Error("Deleted item should be gone from the file")
	}
	if err := svc.DeleteItem(item.ID); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
	if err := svc.DeleteItem(""); !errors.Is(err, ErrEmptyID) {
		t.Errorf("Expected ErrEmptyID, got %v", err)
	}
}

// ============================================================================
// Mark Tests
// ============================================================================

func TestSetMark(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	item, err := svc.AddItem(AddItemRequest{
		Name: "Standup",
		Kind: models.KindTask,
		Days: []models.Weekday{models.Monday},
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := svc.SetMark(SetMarkRequest{ID: item.ID, Day: models.Monday, Done: true}); err != nil {
		t.Fatalf("SetMark failed: %v", err)
	}
	saved, err := reload(t, st).Find(item.ID)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if !saved.DoneOn(models.Monday) {
		t.Error("Mark should be persisted")
	}

	if err := svc.SetMark(SetMarkRequest{ID: item.ID, Day: models.Friday, Done: true}); !errors.Is(err, models.ErrDayNotTracked) {
		t.Errorf("Expected ErrDayNotTracked, got %v", err)
	}
	if err := svc.SetMark(SetMarkRequest{ID: item.ID, Day: "someday", Done: true}); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("Expected ErrInvalidDay, got %v", err)
	}
	if err := svc.SetMark(SetMarkRequest{ID: "missing", Day: models.Monday, Done: true}); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestToggleMark(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	item, err := svc.AddItem(AddItemRequest{Name: "Reading", Kind: models.KindHabit})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	done, err := svc.ToggleMark(item.ID, models.Tuesday)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !done {
		t.Error("First toggle should mark the day done")
	}

	done, err = svc.ToggleMark(item.ID, models.Tuesday)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if done {
		t.Error("Second toggle should clear the mark")
	}

	if _, err := svc.ToggleMark("missing", models.Tuesday); !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

// ============================================================================
// ClearItems Tests
// ============================================================================

func TestClearItems(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	if _, err := svc.AddItem(AddItemRequest{Name: "Gym", Kind: models.KindHabit}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.AddItem(AddItemRequest{Name: "Reading", Kind: models.KindHabit}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := svc.AddItem(AddItemRequest{Name: "Standup", Kind: models.KindTask, Days: []models.Weekday{models.Monday}}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	removed, err := svc.ClearItems(models.KindHabit)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}

	saved := reload(t, st)
	if len(saved.Items) != 1 || saved.Items[0].Kind != models.KindTask {
		t.Error("Only the task should survive the clear")
	}

	if _, err := svc.ClearItems("chore"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Expected ErrInvalidKind, got %v", err)
	}
}

func TestClearItems_EmptyKindSkipsSave(t *testing.T) {
	t.Parallel()

	svc, st := setupTestService(t)

	removed, err := svc.ClearItems(models.KindTask)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected 0 removed, got %d", removed)
	}
	if _, err := os.Stat(st.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Error("Clearing nothing should not create the tracker file")
	}
}

// ============================================================================
// Failure Handling Tests
// ============================================================================

func TestSaveFailureKeepsState(t *testing.T) {
	t.Parallel()

	// Point the store at a path whose parent is a regular file so every
	// save fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}
	st, err := store.New(filepath.Join(blocker, "tracker.json"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	svc := NewService(st, models.NewDocument(), WithClock(func() time.Time { return testClock }))

	item, err := svc.AddItem(AddItemRequest{Name: "Reading", Kind: models.KindHabit})
	if !errors.Is(err, store.ErrIO) {
		t.Fatalf("Expected an ErrIO wrap, got %v", err)
	}
	if item == nil {
		t.Fatal("The created item should still be returned")
	}

	// The mutation stays in memory, so the state remains usable.
	if _, err := svc.Item(item.ID); err != nil {
		t.Error("Item should still be in the in-memory document")
	}
	if _, err := svc.ToggleMark(item.ID, models.Monday); !errors.Is(err, store.ErrIO) {
		t.Errorf("Expected ErrIO on the follow-up save, got %v", err)
	}
	kept, err := svc.Item(item.ID)
	if err != nil {
		t.Fatalf("Item lookup failed: %v", err)
	}
	if !kept.DoneOn(models.Monday) {
		t.Error("The mark flip should survive the failed save")
	}
}
