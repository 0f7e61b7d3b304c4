// Package tracker holds the business operations over the weekly document:
// validation, the document mutation itself, and the save that follows it.
package tracker

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/stats"
	"github.com/vergashev/hafta/internal/store"
)

// Service defines all tracker business operations
type Service interface {
	// Read operations
	Document() *models.Document
	Item(id string) (*models.Item, error)
	ItemByName(name string) (*models.Item, error)
	Items(kind models.Kind) []*models.Item
	Summary() stats.WeekSummary

	// Write operations
	AddItem(req AddItemRequest) (*models.Item, error)
	RenameItem(req RenameItemRequest) error
	DeleteItem(id string) error
	SetMark(req SetMarkRequest) error
	ToggleMark(id string, day models.Weekday) (bool, error)
	ClearItems(kind models.Kind) (int, error)
}

// AddItemRequest encapsulates all data needed to add an item.
// Days may be empty, which schedules the item on every day of the week.
type AddItemRequest struct {
	Name string
	Kind models.Kind
	Days []models.Weekday
}

// RenameItemRequest encapsulates all data needed to rename an item
type RenameItemRequest struct {
	ID      string
	NewName string
}

// SetMarkRequest encapsulates all data needed to record a completion mark
type SetMarkRequest struct {
	ID   string
	Day  models.Weekday
	Done bool
}

// service implements Service interface
type service struct {
	store *store.Store
	doc   *models.Document
	now   func() time.Time
}

// NewService creates a tracker service over an already loaded document.
// Every successful mutation is written straight back through the store.
func NewService(st *store.Store, doc *models.Document, opts ...Option) Service {
	s := &service{
		store: st,
		doc:   doc,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document returns the live in-memory document.
func (s *service) Document() *models.Document {
	return s.doc
}

// Item returns the item with the given ID.
func (s *service) Item(id string) (*models.Item, error) {
	return s.doc.Find(id)
}

// ItemByName returns the item with the given name, ignoring case.
func (s *service) ItemByName(name string) (*models.Item, error) {
	return s.doc.FindByName(name)
}

// Items returns the items of one kind in document order.
func (s *service) Items(kind models.Kind) []*models.Item {
	return s.doc.ItemsOfKind(kind)
}

// Summary aggregates the whole week across every item.
func (s *service) Summary() stats.WeekSummary {
	return stats.Summarize(s.doc.Items)
}

// AddItem handles item creation with validation and persistence
func (s *service) AddItem(req AddItemRequest) (*models.Item, error) {
	if err := validateAddItem(req); err != nil {
		return nil, err
	}

	item := models.NewItem(strings.TrimSpace(req.Name), req.Kind, req.Days, s.now())
	if err := s.doc.Add(item); err != nil {
		return nil, err
	}
	if err := s.persist(); err != nil {
		return item, err
	}
	return item, nil
}

// RenameItem changes an item's name. The ID and recorded marks stay as
// they are.
func (s *service) RenameItem(req RenameItemRequest) error {
	if req.ID == "" {
		return ErrEmptyID
	}
	if err := validateName(req.NewName); err != nil {
		return err
	}

	if err := s.doc.Rename(req.ID, req.NewName); err != nil {
		return err
	}
	return s.persist()
}

// DeleteItem removes an item. Its marks disappear with it, so the weekly
// figures stop counting it immediately.
func (s *service) DeleteItem(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := s.doc.Remove(id); err != nil {
		return err
	}
	return s.persist()
}

// SetMark records a completion mark for one day.
func (s *service) SetMark(req SetMarkRequest) error {
	if req.ID == "" {
		return ErrEmptyID
	}
	if !req.Day.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDay, req.Day)
	}

	if err := s.doc.SetMark(req.ID, req.Day, req.Done); err != nil {
		return err
	}
	return s.persist()
}

// ToggleMark flips the completion mark for one day and reports the new
// state.
func (s *service) ToggleMark(id string, day models.Weekday) (bool, error) {
	item, err := s.doc.Find(id)
	if err != nil {
		return false, err
	}
	done := !item.DoneOn(day)
	if err := s.SetMark(SetMarkRequest{ID: id, Day: day, Done: done}); err != nil {
		return false, err
	}
	return done, nil
}

// ClearItems removes every item of one kind and reports how many were
// removed. Clearing an already empty kind is a no-op and skips the save.
func (s *service) ClearItems(kind models.Kind) (int, error) {
	if !kind.Valid() {
		return 0, ErrInvalidKind
	}
	removed := s.doc.ClearKind(kind)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist()
}

// persist stamps the document and writes it through the store. On failure
// the in-memory mutation is kept, so the state stays usable and a later
// successful save flushes it.
func (s *service) persist() error {
	s.doc.SavedAt = s.now()
	if err := s.store.Save(s.doc); err != nil {
		slog.Error("failed to save tracker file", "path", s.store.Path(), "error", err)
		return err
	}
	return nil
}

// validateAddItem validates an AddItemRequest
func validateAddItem(req AddItemRequest) error {
	if err := validateName(req.Name); err != nil {
		return err
	}
	if !req.Kind.Valid() {
		return ErrInvalidKind
	}
	// Habits default to every day, tasks are pinned to the days they name.
	if req.Kind == models.KindTask && len(req.Days) == 0 {
		return ErrTaskNeedsDay
	}
	for _, day := range req.Days {
		if !day.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidDay, day)
		}
	}
	return nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(trimmed) > models.MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
