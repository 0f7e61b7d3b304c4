// Package export renders the tracked week as an Excel workbook with one
// sheet per item kind plus a summary sheet.
package export

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/stats"
)

// Sheet names in workbook order.
const (
	SheetHabits  = "Habits"
	SheetTasks   = "Tasks"
	SheetSummary = "Summary"
)

// Cell texts for the per-day item grid.
const (
	cellDone    = "Done"
	cellNotDone = "Not done"
	cellSkipped = "-"
)

const dateLayout = "2006-01-02"

// DefaultFilename returns the workbook name for the week containing t,
// e.g. "habits_2025-06-02.xlsx".
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("habits_%s.xlsx", stats.WeekStart(t).Format(dateLayout))
}

// WriteFile renders the document for the week containing week and writes
// the workbook to path. The tracker file itself is never touched, so a
// failed export cannot damage tracked data.
func WriteFile(doc *models.Document, week time.Time, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetHabits); err != nil {
		return fmt.Errorf("%w: failed to prepare workbook: %w", ErrExport, err)
	}
	for _, sheet := range []string{SheetTasks, SheetSummary} {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("%w: failed to prepare workbook: %w", ErrExport, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: failed to prepare workbook: %w", ErrExport, err)
	}

	if err := writeItemSheet(f, SheetHabits, "Habit", doc.ItemsOfKind(models.KindHabit), week, headerStyle); err != nil {
		return fmt.Errorf("%w: failed to fill the %s sheet: %w", ErrExport, SheetHabits, err)
	}
	if err := writeItemSheet(f, SheetTasks, "Task", doc.ItemsOfKind(models.KindTask), week, headerStyle); err != nil {
		return fmt.Errorf("%w: failed to fill the %s sheet: %w", ErrExport, SheetTasks, err)
	}
	if err := writeSummarySheet(f, doc, week, headerStyle); err != nil {
		return fmt.Errorf("%w: failed to fill the %s sheet: %w", ErrExport, SheetSummary, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: failed to write workbook: %w", ErrExport, err)
	}
	return nil
}

// writeItemSheet fills one sheet with a name column and one column per
// weekday. Days an item does not repeat on render as "-".
func writeItemSheet(f *excelize.File, sheet, label string, items []*models.Item, week time.Time, headerStyle int) error {
	dates := stats.WeekDates(week)
	widths := make([]int, models.DaysPerWeek+1)

	header := make([]string, 0, models.DaysPerWeek+1)
	header = append(header, label)
	for i, day := range models.Weekdays {
		header = append(header, fmt.Sprintf("%s (%s)", day.Title(), dates[i].Format(dateLayout)))
	}
	if err := writeRow(f, sheet, 1, header, widths); err != nil {
		return err
	}

	for i, it := range items {
		row := make([]string, 0, models.DaysPerWeek+1)
		row = append(row, it.Name)
		for _, day := range models.Weekdays {
			switch {
			case !it.AppliesOn(day):
				row = append(row, cellSkipped)
			case it.DoneOn(day):
				row = append(row, cellDone)
			default:
				row = append(row, cellNotDone)
			}
		}
		if err := writeRow(f, sheet, i+2, row, widths); err != nil {
			return err
		}
	}

	if err := styleHeader(f, sheet, len(header), headerStyle); err != nil {
		return err
	}
	return fitColumns(f, sheet, widths)
}

// writeSummarySheet fills the summary sheet with the daily figures and
// the weekly total.
func writeSummarySheet(f *excelize.File, doc *models.Document, week time.Time, headerStyle int) error {
	dates := stats.WeekDates(week)
	summary := stats.Summarize(doc.Items)
	widths := make([]int, 4)

	if err := writeRow(f, SheetSummary, 1, []string{"Day", "Done", "Scheduled", "Completion"}, widths); err != nil {
		return err
	}
	for i, day := range summary.Days {
		row := []string{
			fmt.Sprintf("%s (%s)", day.Day.Title(), dates[i].Format(dateLayout)),
			fmt.Sprintf("%d", day.Done),
			fmt.Sprintf("%d", day.Total),
			stats.FormatPercent(day.Percent),
		}
		if err := writeRow(f, SheetSummary, i+2, row, widths); err != nil {
			return err
		}
	}
	weekRow := []string{
		"Week",
		fmt.Sprintf("%d", summary.Done),
		fmt.Sprintf("%d", summary.Total),
		stats.FormatPercent(summary.Percent),
	}
	if err := writeRow(f, SheetSummary, models.DaysPerWeek+3, weekRow, widths); err != nil {
		return err
	}

	if err := styleHeader(f, SheetSummary, 4, headerStyle); err != nil {
		return err
	}
	return fitColumns(f, SheetSummary, widths)
}

// writeRow writes one row of values and grows the per-column width tally.
func writeRow(f *excelize.File, sheet string, row int, values []string, widths []int) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
		if n := utf8.RuneCountInString(value); n > widths[i] {
			widths[i] = n
		}
	}
	return nil
}

func styleHeader(f *excelize.File, sheet string, columns, styleID int) error {
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, styleID)
}

// fitColumns sizes every column to its longest content plus padding.
func fitColumns(f *excelize.File, sheet string, widths []int) error {
	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}
