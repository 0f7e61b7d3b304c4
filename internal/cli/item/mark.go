package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tracker"
)

// MarkCmd returns the item mark subcommand
func MarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark an item done or not done for a day",
		Long: `Mark a habit or task done for a weekday. The item can be referenced
by ID or by name.

Examples:
  # Mark done for today
  hafta item mark --item="Reading"

  # Mark done for a specific day
  hafta item mark --item="Reading" --day=wednesday

  # Undo a mark
  hafta item mark --item="Reading" --day=wed --undo
`,
		RunE: runMark,
	}

	// Required flags
	cmd.Flags().String("item", "", "Item ID or name (required)")
	if err := cmd.MarkFlagRequired("item"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("day", "", "Weekday to mark (default: today)")
	cmd.Flags().Bool("undo", false, "Mark the day as not done instead")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMark(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemRef, _ := cmd.Flags().GetString("item")
	dayName, _ := cmd.Flags().GetString("day")
	undo, _ := cmd.Flags().GetBool("undo")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Resolve the day, defaulting to today
	day := models.WeekdayOf(time.Now())
	if dayName != "" {
		parsed, err := models.ParseWeekday(dayName)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_DAY", err.Error(),
				"Valid days are monday through sunday, or mon through sun"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.Exit(cli.ExitValidation, err)
		}
		day = parsed
	}

	// Initialize CLI
	cliInstance, err := cli.FromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	target, err := cli.ResolveItem(cliInstance.App.Tracker, itemRef)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND", err.Error(),
			"Use 'hafta item list' to see IDs and names"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitNotFound, err)
	}

	err = cliInstance.App.Tracker.SetMark(tracker.SetMarkRequest{
		ID:   target.ID,
		Day:  day,
		Done: !undo,
	})
	switch {
	case err == nil:
	case errors.Is(err, models.ErrDayNotTracked):
		if fmtErr := formatter.ErrorWithSuggestion("DAY_NOT_TRACKED",
			fmt.Sprintf("'%s' is not tracked on %s", target.Name, day.Title()),
			fmt.Sprintf("'%s' is tracked on: %s", target.Name, cli.FormatDays(target))); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitValidation, err)
	case errors.Is(err, store.ErrIO):
		if fmtErr := formatter.Error("WRITE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	default:
		if fmtErr := formatter.Error("MARK_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output success
	if quietMode {
		return nil
	}

	status := "done"
	if undo {
		status = "not done"
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"item_id": target.ID,
			"day":     string(day),
			"done":    !undo,
		})
	}

	fmt.Printf("✓ '%s' marked %s for %s\n", target.Name, status, day.Title())
	return nil
}
