package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tracker"
)

// AddCmd returns the item add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a habit or weekly task",
		Long: `Add a habit or weekly task to the tracker.

Habits reset every week and are meant to recur; tasks are one-off goals
for the current week. Both are tracked per weekday.

Examples:
  # Daily habit (human-readable output)
  hafta item add --name="Reading"

  # Weekly task tracked only on workdays
  hafta item add --name="Standup" --kind=task --days=mon,tue,wed,thu,fri

  # JSON output for agents
  hafta item add --name="Reading" --json

  # Quiet mode for bash capture
  ITEM_ID=$(hafta item add --name="Reading" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("name", "", "Item name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("kind", "habit", "Item kind: habit or task")
	cmd.Flags().String("days", "", "Comma-separated weekdays, e.g. mon,wed,fri (default: every day)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemName, _ := cmd.Flags().GetString("name")
	itemKind, _ := cmd.Flags().GetString("kind")
	itemDays, _ := cmd.Flags().GetString("days")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Parse kind
	kind, err := models.ParseKind(itemKind)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_KIND", err.Error(),
			"Valid kinds are: habit, task"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitValidation, err)
	}

	// Parse schedule
	days, err := cli.ParseDays(itemDays)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_DAY", err.Error(),
			"Valid days are monday through sunday, or mon through sun"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitValidation, err)
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

	item, err := cliInstance.App.Tracker.AddItem(tracker.AddItemRequest{
		Name: itemName,
		Kind: kind,
		Days: days,
	})
	switch {
	case err == nil:
	case errors.Is(err, models.ErrDuplicateName):
		if fmtErr := formatter.ErrorWithSuggestion("DUPLICATE_NAME",
			fmt.Sprintf("an item named '%s' already exists", itemName),
			"Use 'hafta item list' to see existing items"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitValidation, err)
	case errors.Is(err, tracker.ErrTaskNeedsDay):
		if fmtErr := formatter.ErrorWithSuggestion("TASK_NEEDS_DAY", err.Error(),
			"Pass --days with at least one weekday, e.g. --days=mon"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitValidation, err)
	case errors.Is(err, tracker.ErrEmptyName), errors.Is(err, tracker.ErrNameTooLong):
		if fmtErr := formatter.Error("INVALID_NAME", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitValidation, err)
	case errors.Is(err, store.ErrIO):
		if fmtErr := formatter.Error("WRITE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	default:
		if fmtErr := formatter.Error("ADD_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%s\n", item.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"item":    item,
		})
	}

	// Human-readable output
	fmt.Printf("✓ %s '%s' added successfully (ID: %s)\n", cli.FormatKind(item.Kind), item.Name, item.ID)
	fmt.Printf("  Days: %s\n", cli.FormatDays(item))

	return nil
}
