// Package stats computes completion figures over the tracked week.
package stats

import (
	"fmt"
	"time"

	"github.com/vergashev/hafta/internal/models"
)

// DaySummary aggregates one day of the week.
type DaySummary struct {
	Day     models.Weekday
	Done    int
	Total   int
	Percent float64
}

// WeekSummary aggregates the whole week. Done and Total are raw entry
// tallies across all days; Percent is the day-weighted weekly figure.
type WeekSummary struct {
	Days    [7]DaySummary
	Done    int
	Total   int
	Percent float64
}

// DayCounts returns how many of the items that repeat on the given day are
// marked done, alongside how many repeat on it at all.
func DayCounts(items []*models.Item, day models.Weekday) (done, total int) {
	for _, it := range items {
		if !it.AppliesOn(day) {
			continue
		}
		total++
		if it.DoneOn(day) {
			done++
		}
	}
	return done, total
}

// DailyPercent returns the share of items completed on the given day, in
// the range 0 to 100. A day with nothing scheduled scores 0.
func DailyPercent(items []*models.Item, day models.Weekday) float64 {
	done, total := DayCounts(items, day)
	return percent(done, total)
}

// WeeklyPercent returns the weekly completion figure: the mean of the
// daily percentages over days that have at least one item scheduled.
// Every such day weighs the same regardless of how many items it holds,
// so one packed day cannot drown out a light one. A week with nothing
// scheduled scores 0.
func WeeklyPercent(items []*models.Item) float64 {
	var sum float64
	var counted int
	for _, day := range models.Weekdays {
		done, total := DayCounts(items, day)
		if total == 0 {
			continue
		}
		counted++
		sum += percent(done, total)
	}
	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// WeekCounts returns the raw done and scheduled entry tallies summed over
// every day of the week.
func WeekCounts(items []*models.Item) (done, total int) {
	for _, day := range models.Weekdays {
		d, n := DayCounts(items, day)
		done += d
		total += n
	}
	return done, total
}

// ItemCounts returns how many of the item's scheduled days are done and
// how many days it is scheduled on.
func ItemCounts(it *models.Item) (done, total int) {
	for _, day := range it.ApplicableDays() {
		total++
		if it.DoneOn(day) {
			done++
		}
	}
	return done, total
}

// ItemPercent returns the item's own completion over its scheduled days,
// in the range 0 to 100.
func ItemPercent(it *models.Item) float64 {
	done, total := ItemCounts(it)
	return percent(done, total)
}

// Summarize computes every daily figure plus the weekly ones in a single
// pass over the items.
func Summarize(items []*models.Item) WeekSummary {
	var s WeekSummary
	var sum float64
	var counted int
	for i, day := range models.Weekdays {
		done, total := DayCounts(items, day)
		p := percent(done, total)
		s.Days[i] = DaySummary{Day: day, Done: done, Total: total, Percent: p}
		s.Done += done
		s.Total += total
		if total > 0 {
			counted++
			sum += p
		}
	}
	if counted > 0 {
		s.Percent = sum / float64(counted)
	}
	return s
}

// WeekStart returns midnight on the Monday of t's week, in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekDates returns the seven calendar dates of t's week, Monday first.
func WeekDates(t time.Time) [7]time.Time {
	start := WeekStart(t)
	var days [7]time.Time
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// FormatPercent renders a percentage with two decimals, e.g. "42.86%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
