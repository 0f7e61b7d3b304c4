package item

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/models"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits and tasks",
		Long:  "List tracked items, optionally filtered by kind.",
		RunE:  runList,
	}

	// Flags
	cmd.Flags().String("kind", "", "Filter by kind: habit or task")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kindFilter, _ := cmd.Flags().GetString("kind")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var kinds []models.Kind
	if kindFilter == "" {
		kinds = []models.Kind{models.KindHabit, models.KindTask}
	} else {
		kind, err := models.ParseKind(kindFilter)
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_KIND", err.Error(),
				"Valid kinds are: habit, task"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.Exit(cli.ExitValidation, err)
		}
		kinds = []models.Kind{kind}
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

	var allItems []*models.Item
	for _, kind := range kinds {
		allItems = append(allItems, cliInstance.App.Tracker.Items(kind)...)
	}

	// Output in appropriate format
	if quietMode {
		// Just print IDs
		for _, it := range allItems {
			fmt.Printf("%s\n", it.ID)
		}
		return nil
	}

	if jsonOutput {
		if allItems == nil {
			allItems = []*models.Item{}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"items":   allItems,
		})
	}

	// Human-readable output
	if len(allItems) == 0 {
		fmt.Println("No items found")
		return nil
	}

	for _, kind := range kinds {
		items := cliInstance.App.Tracker.Items(kind)
		if len(items) == 0 {
			continue
		}

		fmt.Printf("%ss (%d):\n\n", cli.FormatKind(kind), len(items))
		for _, it := range items {
			fmt.Printf("  [%s] %s (%s)\n", it.ID, it.Name, cli.FormatDays(it))
		}
		fmt.Println()
	}

	return nil
}
