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
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
)

// ClearCmd returns the item clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every item of a kind",
		Long: `Delete all habits or all tasks at once.

Examples:
  # Start the week with a clean task list
  hafta item clear --kind=task --force

  # Clear habits with confirmation
  hafta item clear --kind=habit
`,
		RunE: runClear,
	}

	cmd.Flags().String("kind", "", "Item kind to clear: habit or task (required)")
	if err := cmd.MarkFlagRequired("kind"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kindName, _ := cmd.Flags().GetString("kind")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	kind, err := models.ParseKind(kindName)
	if err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_KIND", err.Error(),
			"Valid kinds are: habit, task"); fmtErr != nil {
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

	count := len(cliInstance.App.Tracker.Items(kind))

	// Ask for confirmation unless force or quiet mode
	if count > 0 && !force && !quietMode {
		fmt.Printf("Delete all %d %ss? (y/N): ", count, string(kind))
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

	removed, err := cliInstance.App.Tracker.ClearItems(kind)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrIO):
		if fmtErr := formatter.Error("WRITE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	default:
		if fmtErr := formatter.Error("CLEAR_ERROR", err.Error()); fmtErr != nil {
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
			"kind":    string(kind),
			"removed": removed,
		})
	}

	if removed == 0 {
		fmt.Printf("No %ss to remove\n", string(kind))
		return nil
	}
	fmt.Printf("✓ Removed %d %ss\n", removed, string(kind))
	return nil
}
