package models

import (
	"strings"
	"time"
)

// Document is the whole persisted state of the tracker: every habit and
// task plus the time the file was last written.
type Document struct {
	Items   []*Item   `json:"items"`
	SavedAt time.Time `json:"saved_at"`
}

// DefaultHabits are seeded into a fresh document on first run.
var DefaultHabits = []string{
	"Wake up early",
	"No sweets",
	"Cold shower",
	"Reading",
	"Gym",
	"Writing code",
	"English practice",
}

// NewDocument returns an empty document. Items is non-nil so the document
// serializes as an empty list rather than null.
func NewDocument() *Document {
	return &Document{Items: []*Item{}}
}

// DefaultDocument returns a document seeded with the default habit list.
func DefaultDocument(now time.Time) *Document {
	doc := NewDocument()
	for _, name := range DefaultHabits {
		doc.Items = append(doc.Items, NewItem(name, KindHabit, nil, now))
	}
	doc.SavedAt = now
	return doc
}

// Find returns the item with the given ID, or ErrItemNotFound.
func (d *Document) Find(id string) (*Item, error) {
	for _, it := range d.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, ErrItemNotFound
}

// FindByName returns the first item whose name matches, ignoring case
// and surrounding whitespace.
func (d *Document) FindByName(name string) (*Item, error) {
	want := strings.TrimSpace(name)
	for _, it := range d.Items {
		if strings.EqualFold(it.Name, want) {
			return it, nil
		}
	}
	return nil, ErrItemNotFound
}

// ItemsOfKind returns the items of one kind in document order.
func (d *Document) ItemsOfKind(kind Kind) []*Item {
	out := make([]*Item, 0, len(d.Items))
	for _, it := range d.Items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// ItemsOn returns the items that repeat on the given day, in document order.
func (d *Document) ItemsOn(day Weekday) []*Item {
	out := make([]*Item, 0, len(d.Items))
	for _, it := range d.Items {
		if it.AppliesOn(day) {
			out = append(out, it)
		}
	}
	return out
}

// Add appends an item. Names are unique across the document regardless of
// kind, so adding a duplicate returns ErrDuplicateName.
func (d *Document) Add(item *Item) error {
	if _, err := d.FindByName(item.Name); err == nil {
		return ErrDuplicateName
	}
	d.Items = append(d.Items, item)
	return nil
}

// Rename changes an item's name in place. The ID and all recorded marks
// are preserved.
func (d *Document) Rename(id, newName string) error {
	item, err := d.Find(id)
	if err != nil {
		return err
	}
	if other, err := d.FindByName(newName); err == nil && other.ID != id {
		return ErrDuplicateName
	}
	item.Name = strings.TrimSpace(newName)
	return nil
}

// Remove deletes the item with the given ID.
func (d *Document) Remove(id string) error {
	for i, it := range d.Items {
		if it.ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// SetMark records completion of an item for one day. Days the item does
// not repeat on are rejected with ErrDayNotTracked.
func (d *Document) SetMark(id string, day Weekday, done bool) error {
	item, err := d.Find(id)
	if err != nil {
		return err
	}
	if !item.AppliesOn(day) {
		return ErrDayNotTracked
	}
	if item.Marks == nil {
		item.Marks = make(map[Weekday]bool)
	}
	item.Marks[day] = done
	return nil
}

// ClearKind removes every item of one kind and reports how many were
// removed.
func (d *Document) ClearKind(kind Kind) int {
	kept := d.Items[:0]
	removed := 0
	for _, it := range d.Items {
		if it.Kind == kind {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	d.Items = kept
	return removed
}
