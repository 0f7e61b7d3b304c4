package cli

import (
	"fmt"
	"strings"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/tracker"
)

// ResolveItem finds an item by ID or by name.
// An exact ID match wins; otherwise the name lookup is case-insensitive.
func ResolveItem(svc tracker.Service, ref string) (*models.Item, error) {
	if item, err := svc.Item(ref); err == nil {
		return item, nil
	}

	item, err := svc.ItemByName(ref)
	if err != nil {
		return nil, fmt.Errorf("no habit or task matches '%s': %w", ref, models.ErrItemNotFound)
	}
	return item, nil
}

// ParseDays parses a comma-separated weekday list such as "mon,wed,fri".
// An empty string means the item applies every day and yields nil.
func ParseDays(value string) ([]models.Weekday, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var days []models.Weekday
	for _, part := range strings.Split(value, ",") {
		day, err := models.ParseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return models.NormalizeDays(days), nil
}

// FormatDays renders an item's schedule for human-readable output
func FormatDays(item *models.Item) string {
	if len(item.Days) == 0 {
		return "every day"
	}

	short := make([]string, len(item.Days))
	for i, day := range item.Days {
		short[i] = day.Title()[:3]
	}
	return strings.Join(short, ", ")
}

// FormatKind renders a kind with an initial capital, e.g. "Habit"
func FormatKind(kind models.Kind) string {
	if len(kind) == 0 {
		return ""
	}
	return strings.ToUpper(string(kind[:1])) + string(kind[1:])
}
