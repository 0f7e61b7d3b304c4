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

// RenameCmd returns the item rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a habit or task",
		Long:  "Rename an item, keeping its ID and all completion marks.",
		RunE:  runRename,
	}

	// Required flags
	cmd.Flags().String("item", "", "Item ID or current name (required)")
	if err := cmd.MarkFlagRequired("item"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("name", "", "New name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemRef, _ := cmd.Flags().GetString("item")
	newName, _ := cmd.Flags().GetString("name")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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
	oldName := target.Name

	err = cliInstance.App.Tracker.RenameItem(tracker.RenameItemRequest{
		ID:      target.ID,
		NewName: newName,
	})
	switch {
	case err == nil:
	case errors.Is(err, models.ErrDuplicateName):
		if fmtErr := formatter.ErrorWithSuggestion("DUPLICATE_NAME",
			fmt.Sprintf("an item named '%s' already exists", newName),
			"Choose a name not used by another habit or task"); fmtErr != nil {
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
		if fmtErr := formatter.Error("RENAME_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output success
	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"item_id": target.ID,
			"name":    newName,
		})
	}

	fmt.Printf("✓ '%s' renamed to '%s'\n", oldName, newName)
	return nil
}
