package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/store"
)

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a habit or task",
		Long:  "Delete an item by ID or name (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	cmd.Flags().String("item", "", "Item ID or name (required)")
	if err := cmd.MarkFlagRequired("item"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemRef, _ := cmd.Flags().GetString("item")
	force, _ := cmd.Flags().GetBool("force")
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

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Printf("Delete %s '%s'? (y/N): ", string(target.Kind), target.Name)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			slog.Debug("Error reading user input", "error", err)
		}
		response = strings.ToLower(response)
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	err = cliInstance.App.Tracker.DeleteItem(target.ID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrIO):
		if fmtErr := formatter.Error("WRITE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	default:
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
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
		})
	}

	fmt.Printf("✓ %s '%s' deleted successfully\n", cli.FormatKind(target.Kind), target.Name)
	return nil
}
