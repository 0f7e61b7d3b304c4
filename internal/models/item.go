package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Weekday identifies one day of the tracked week. Weeks start on Monday.
type Weekday string

// Weekday values in week order.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every day in week order, Monday first.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday converts a day name such as "monday" or "mon" into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, day := range Weekdays {
		if name == string(day) || name == day.Short() {
			return day, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// WeekdayOf returns the Weekday for a calendar date.
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Short returns the three letter form, e.g. "mon".
func (w Weekday) Short() string {
	if len(w) < 3 {
		return string(w)
	}
	return string(w[:3])
}

// Title returns the capitalized form, e.g. "Monday".
func (w Weekday) Title() string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(string(w[:1])) + string(w[1:])
}

// Index returns the position of the day in the Monday-first week, or -1
// for a value outside monday through sunday.
func (w Weekday) Index() int {
	for i, day := range Weekdays {
		if day == w {
			return i
		}
	}
	return -1
}

// Valid reports whether the value names a real day.
func (w Weekday) Valid() bool {
	return w.Index() >= 0
}

// Kind distinguishes recurring habits from scheduled tasks.
type Kind string

// Item kinds.
const (
	KindHabit Kind = "habit"
	KindTask  Kind = "task"
)

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindHabit), "habits":
		return KindHabit, nil
	case string(KindTask), "tasks":
		return KindTask, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether the value names a known kind.
func (k Kind) Valid() bool {
	return k == KindHabit || k == KindTask
}

// Item is a single tracked habit or task. Days lists the weekdays the item
// repeats on; an empty list means every day. Marks records completion per
// weekday and only ever holds days the item repeats on.
type Item struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Kind      Kind             `json:"kind"`
	Days      []Weekday        `json:"days,omitempty"`
	Marks     map[Weekday]bool `json:"marks"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewItem builds an item with a fresh ID and an empty mark set.
func NewItem(name string, kind Kind, days []Weekday, now time.Time) *Item {
	return &Item{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      kind,
		Days:      NormalizeDays(days),
		Marks:     make(map[Weekday]bool),
		CreatedAt: now,
	}
}

// AppliesOn reports whether the item repeats on the given day.
func (it *Item) AppliesOn(day Weekday) bool {
	if len(it.Days) == 0 {
		return day.Valid()
	}
	for _, d := range it.Days {
		if d == day {
			return true
		}
	}
	return false
}

// ApplicableDays returns the days the item repeats on, in week order.
func (it *Item) ApplicableDays() []Weekday {
	if len(it.Days) == 0 {
		return Weekdays[:]
	}
	return it.Days
}

// DoneOn reports whether the item is marked complete for the given day.
func (it *Item) DoneOn(day Weekday) bool {
	return it.Marks[day]
}

// NormalizeDays sorts days into week order and removes duplicates and
// invalid values.
func NormalizeDays(days []Weekday) []Weekday {
	if len(days) == 0 {
		return nil
	}
	seen := make(map[Weekday]bool, len(days))
	out := make([]Weekday, 0, len(days))
	for _, d := range days {
		if !d.Valid() || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}
