package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Defined(t *testing.T) {
	// Test that all error variables are defined and not nil
	if ErrItemNotFound == nil {
		t.Error("ErrItemNotFound should not be nil")
	}
	if ErrDuplicateName == nil {
		t.Error("ErrDuplicateName should not be nil")
	}
	if ErrDayNotTracked == nil {
		t.Error("ErrDayNotTracked should not be nil")
	}
	if ErrUnknownWeekday == nil {
		t.Error("ErrUnknownWeekday should not be nil")
	}
	if ErrUnknownKind == nil {
		t.Error("ErrUnknownKind should not be nil")
	}
}

func TestErrors_Unique(t *testing.T) {
	// Ensure each error is distinct
	if errors.Is(ErrItemNotFound, ErrDuplicateName) {
		t.Error("ErrItemNotFound should not equal ErrDuplicateName")
	}
	if errors.Is(ErrUnknownWeekday, ErrUnknownKind) {
		t.Error("ErrUnknownWeekday should not equal ErrUnknownKind")
	}
}

// ============================================================================
// Weekday Tests
// ============================================================================

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input    string
		expected Weekday
		wantErr  bool
	}{
		{"monday", Monday, false},
		{"Monday", Monday, false},
		{"MON", Monday, false},
		{"  tuesday ", Tuesday, false},
		{"wed", Wednesday, false},
		{"sunday", Sunday, false},
		{"sun", Sunday, false},
		{"someday", "", true},
		{"", "", true},
		{"m", "", true},
	}

	for _, tt := range tests {
		got, err := ParseWeekday(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) expected error, got %q", tt.input, got)
			}
			if !errors.Is(err, ErrUnknownWeekday) {
				t.Errorf("ParseWeekday(%q) error should wrap ErrUnknownWeekday", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseWeekday(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestWeekday_Order(t *testing.T) {
	if Weekdays[0] != Monday {
		t.Errorf("Weeks should start on Monday, got %q", Weekdays[0])
	}
	if Weekdays[6] != Sunday {
		t.Errorf("Weeks should end on Sunday, got %q", Weekdays[6])
	}
	for i, day := range Weekdays {
		if day.Index() != i {
			t.Errorf("Index of %q = %d, expected %d", day, day.Index(), i)
		}
	}
}

func TestWeekday_Helpers(t *testing.T) {
	if Monday.Short() != "mon" {
		t.Errorf("Expected 'mon', got %q", Monday.Short())
	}
	if Wednesday.Title() != "Wednesday" {
		t.Errorf("Expected 'Wednesday', got %q", Wednesday.Title())
	}
	if Weekday("someday").Index() != -1 {
		t.Error("Unknown weekday should have index -1")
	}
	if Weekday("someday").Valid() {
		t.Error("Unknown weekday should not be valid")
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-02 is a Monday
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	for i, expected := range Weekdays {
		got := WeekdayOf(monday.AddDate(0, 0, i))
		if got != expected {
			t.Errorf("Day %d of the week = %q, expected %q", i, got, expected)
		}
	}
}

// ============================================================================
// Kind Tests
// ============================================================================

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"habit", KindHabit, false},
		{"habits", KindHabit, false},
		{"Task", KindTask, false},
		{"tasks", KindTask, false},
		{"chore", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseKind(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

// ============================================================================
// Item Tests
// ============================================================================

func TestNewItem(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	item := NewItem("Reading", KindHabit, nil, now)

	if item.ID == "" {
		t.Error("New item should have an ID")
	}
	if item.Name != "Reading" {
		t.Errorf("Expected name 'Reading', got %q", item.Name)
	}
	if item.Kind != KindHabit {
		t.Errorf("Expected kind habit, got %q", item.Kind)
	}
	if item.Marks == nil {
		t.Error("Marks map should be initialized")
	}
	if !item.CreatedAt.Equal(now) {
		t.Errorf("Expected CreatedAt %v, got %v", now, item.CreatedAt)
	}

	other := NewItem("Reading", KindHabit, nil, now)
	if item.ID == other.ID {
		t.Error("Items should get distinct IDs")
	}
}

func TestItem_AppliesOn(t *testing.T) {
	everyDay := NewItem("Reading", KindHabit, nil, time.Now())
	for _, day := range Weekdays {
		if !everyDay.AppliesOn(day) {
			t.Errorf("Item without explicit days should apply on %q", day)
		}
	}
	if everyDay.AppliesOn(Weekday("someday")) {
		t.Error("Item should not apply on an unknown day")
	}

	weekdaysOnly := NewItem("Standup", KindTask, []Weekday{Monday, Wednesday}, time.Now())
	if !weekdaysOnly.AppliesOn(Monday) {
		t.Error("Item should apply on a listed day")
	}
	if weekdaysOnly.AppliesOn(Sunday) {
		t.Error("Item should not apply on an unlisted day")
	}
}

func TestItem_ApplicableDays(t *testing.T) {
	everyDay := NewItem("Reading", KindHabit, nil, time.Now())
	if len(everyDay.ApplicableDays()) != DaysPerWeek {
		t.Errorf("Expected %d applicable days, got %d", DaysPerWeek, len(everyDay.ApplicableDays()))
	}

	scoped := NewItem("Standup", KindTask, []Weekday{Friday, Monday}, time.Now())
	days := scoped.ApplicableDays()
	if len(days) != 2 {
		t.Fatalf("Expected 2 applicable days, got %d", len(days))
	}
	if days[0] != Monday || days[1] != Friday {
		t.Errorf("Days should be in week order, got %v", days)
	}
}

func TestNormalizeDays(t *testing.T) {
	tests := []struct {
		name     string
		input    []Weekday
		expected []Weekday
	}{
		{"nil stays nil", nil, nil},
		{"sorted into week order", []Weekday{Sunday, Monday, Friday}, []Weekday{Monday, Friday, Sunday}},
		{"duplicates removed", []Weekday{Monday, Monday, Tuesday}, []Weekday{Monday, Tuesday}},
		{"invalid values dropped", []Weekday{Monday, "someday"}, []Weekday{Monday}},
		{"all invalid collapses to nil", []Weekday{"someday"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDays(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

// ============================================================================
// Document Tests
// ============================================================================

func TestDocument_Add(t *testing.T) {
	doc := NewDocument()
	item := NewItem("Reading", KindHabit, nil, time.Now())

	if err := doc.Add(item); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(doc.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(doc.Items))
	}

	dup := NewItem("  reading ", KindTask, []Weekday{Monday}, time.Now())
	if err := doc.Add(dup); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	if len(doc.Items) != 1 {
		t.Errorf("Duplicate add should not grow the document, got %d items", len(doc.Items))
	}
}

func TestDocument_Rename(t *testing.T) {
	doc := NewDocument()
	item := NewItem("Gym", KindHabit, nil, time.Now())
	if err := doc.Add(item); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.SetMark(item.ID, Monday, true); err != nil {
		t.Fatalf("SetMark failed: %v", err)
	}

	oldID := item.ID
	if err := doc.Rename(item.ID, "Morning gym"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	renamed, err := doc.Find(oldID)
	if err != nil {
		t.Fatalf("Renamed item should keep its ID: %v", err)
	}
	if renamed.Name != "Morning gym" {
		t.Errorf("Expected name 'Morning gym', got %q", renamed.Name)
	}
	if !renamed.DoneOn(Monday) {
		t.Error("Rename should preserve recorded marks")
	}
}

func TestDocument_Rename_Conflicts(t *testing.T) {
	doc := NewDocument()
	gym := NewItem("Gym", KindHabit, nil, time.Now())
	reading := NewItem("Reading", KindHabit, nil, time.Now())
	if err := doc.Add(gym); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add(reading); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := doc.Rename(gym.ID, "reading"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	// Renaming to the same name with different casing is allowed
	if err := doc.Rename(gym.ID, "GYM"); err != nil {
		t.Errorf("Renaming an item to its own name should succeed: %v", err)
	}
	if err := doc.Rename("missing-id", "Anything"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestDocument_Remove(t *testing.T) {
	doc := NewDocument()
	gym := NewItem("Gym", KindHabit, nil, time.Now())
	reading := NewItem("Reading", KindHabit, nil, time.Now())
	if err := doc.Add(gym); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add(reading); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := doc.Remove(gym.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(doc.Items) != 1 {
		t.Fatalf("Expected 1 item after removal, got %d", len(doc.Items))
	}
	if _, err := doc.Find(gym.ID); !errors.Is(err, ErrItemNotFound) {
		t.Error("Removed item should not be findable")
	}
	if err := doc.Remove(gym.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestDocument_SetMark(t *testing.T) {
	doc := NewDocument()
	standup := NewItem("Standup", KindTask, []Weekday{Monday, Wednesday}, time.Now())
	if err := doc.Add(standup); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := doc.SetMark(standup.ID, Monday, true); err != nil {
		t.Fatalf("SetMark failed: %v", err)
	}
	if !standup.DoneOn(Monday) {
		t.Error("Mark should be recorded")
	}

	if err := doc.SetMark(standup.ID, Monday, false); err != nil {
		t.Fatalf("SetMark failed: %v", err)
	}
	if standup.DoneOn(Monday) {
		t.Error("Mark should be cleared")
	}

	if err := doc.SetMark(standup.ID, Sunday, true); !errors.Is(err, ErrDayNotTracked) {
		t.Errorf("Expected ErrDayNotTracked, got %v", err)
	}
	if err := doc.SetMark("missing-id", Monday, true); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestDocument_ClearKind(t *testing.T) {
	doc := NewDocument()
	now := time.Now()
	if err := doc.Add(NewItem("Gym", KindHabit, nil, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add(NewItem("Reading", KindHabit, nil, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add(NewItem("Standup", KindTask, []Weekday{Monday}, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	removed := doc.ClearKind(KindHabit)
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}
	if len(doc.Items) != 1 {
		t.Errorf("Expected 1 item left, got %d", len(doc.Items))
	}
	if doc.Items[0].Kind != KindTask {
		t.Error("Remaining item should be the task")
	}
	if removed := doc.ClearKind(KindHabit); removed != 0 {
		t.Errorf("Expected 0 removed on second clear, got %d", removed)
	}
}

func TestDocument_ItemsOfKind(t *testing.T) {
	doc := NewDocument()
	now := time.Now()
	if err := doc.Add(NewItem("Gym", KindHabit, nil, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add(NewItem("Standup", KindTask, []Weekday{Monday}, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	habits := doc.ItemsOfKind(KindHabit)
	if len(habits) != 1 || habits[0].Name != "Gym" {
		t.Errorf("Expected the Gym habit, got %v", habits)
	}
	tasks := doc.ItemsOfKind(KindTask)
	if len(tasks) != 1 || tasks[0].Name != "Standup" {
		t.Errorf("Expected the Standup task, got %v", tasks)
	}
}

func TestDocument_ItemsOn(t *testing.T) {
	doc := NewDocument()
	now := time.Now()
	if err := doc.Add(NewItem("Gym", KindHabit, nil, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := doc.Add(NewItem("Standup", KindTask, []Weekday{Monday}, now)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	monday := doc.ItemsOn(Monday)
	if len(monday) != 2 {
		t.Errorf("Expected 2 items on Monday, got %d", len(monday))
	}
	sunday := doc.ItemsOn(Sunday)
	if len(sunday) != 1 || sunday[0].Name != "Gym" {
		t.Errorf("Expected only the habit on Sunday, got %v", sunday)
	}
}

func TestDefaultDocument(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	doc := DefaultDocument(now)

	if len(doc.Items) != len(DefaultHabits) {
		t.Fatalf("Expected %d seeded habits, got %d", len(DefaultHabits), len(doc.Items))
	}
	for i, it := range doc.Items {
		if it.Kind != KindHabit {
			t.Errorf("Seeded item %q should be a habit", it.Name)
		}
		if it.Name != DefaultHabits[i] {
			t.Errorf("Expected %q at position %d, got %q", DefaultHabits[i], i, it.Name)
		}
	}
	if !doc.SavedAt.Equal(now) {
		t.Errorf("Expected SavedAt %v, got %v", now, doc.SavedAt)
	}
}
