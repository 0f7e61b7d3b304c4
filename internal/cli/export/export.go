package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/cli"
	exportsvc "github.com/vergashev/hafta/internal/export"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the week to an Excel workbook",
		Long: `Write the current week's habits, tasks, and completion summary to an
.xlsx workbook with one sheet per category.

Examples:
  # Default filename in the current directory, e.g. habits_2025-06-02.xlsx
  hafta export

  # Explicit output path
  hafta export --output=/tmp/week.xlsx

  # Capture the written path in a script
  FILE=$(hafta export --quiet)
`,
		RunE: runExport,
	}

	// Flags
	cmd.Flags().String("output", "", "Output path (default: habits_<week-start>.xlsx)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	outputPath, _ := cmd.Flags().GetString("output")
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

	now := time.Now()
	if outputPath == "" {
		outputPath = exportsvc.DefaultFilename(now)
	}

	doc := cliInstance.App.Tracker.Document()
	if err := exportsvc.WriteFile(doc, now, outputPath); err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("EXPORT_ERROR", err.Error(),
			"Check that the output directory exists and is writable"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.Exit(cli.ExitError, err)
	}

	// Output success
	if quietMode {
		fmt.Printf("%s\n", outputPath)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"path":    outputPath,
		})
	}

	fmt.Printf("✓ Week exported to %s\n", outputPath)
	return nil
}
