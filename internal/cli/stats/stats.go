package stats

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/cli/styles"
	"github.com/vergashev/hafta/internal/models"
	weekstats "github.com/vergashev/hafta/internal/stats"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics for the week",
		Long: `Show how many scheduled items are done per day and for the week.

The weekly percentage is the average of the daily percentages over the
days that have at least one scheduled item.

Examples:
  # Full week overview
  hafta stats

  # A single day
  hafta stats --day=wednesday

  # Weekly percentage only, for scripts
  hafta stats --quiet
`,
		RunE: runStats,
	}

	// Flags
	cmd.Flags().String("day", "", "Show a single weekday instead of the whole week")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (percentage only)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dayName, _ := cmd.Flags().GetString("day")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var day models.Weekday
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

	summary := cliInstance.App.Tracker.Summary()

	if day != "" {
		return outputDay(summary, day, jsonOutput, quietMode)
	}
	return outputWeek(cliInstance, summary, jsonOutput, quietMode)
}

func outputDay(summary weekstats.WeekSummary, day models.Weekday, jsonOutput, quietMode bool) error {
	daySummary := summary.Days[day.Index()]

	if quietMode {
		fmt.Printf("%.2f\n", daySummary.Percent)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"day":     dayJSON(daySummary),
		})
	}

	fmt.Printf("%s: %d/%d (%s)\n", day.Title(), daySummary.Done, daySummary.Total,
		weekstats.FormatPercent(daySummary.Percent))
	return nil
}

func outputWeek(cliInstance *cli.CLI, summary weekstats.WeekSummary, jsonOutput, quietMode bool) error {
	if quietMode {
		fmt.Printf("%.2f\n", summary.Percent)
		return nil
	}

	if jsonOutput {
		days := make([]map[string]interface{}, 0, len(summary.Days))
		for _, daySummary := range summary.Days {
			days = append(days, dayJSON(daySummary))
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"week": map[string]interface{}{
				"days":    days,
				"done":    summary.Done,
				"total":   summary.Total,
				"percent": summary.Percent,
			},
		})
	}

	// Human-readable output
	styles.Init(cliInstance.App.Config().ColorScheme)

	weekStart := weekstats.WeekStart(time.Now())
	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Week of %s", weekStart.Format("2006-01-02"))))
	fmt.Println()

	for _, daySummary := range summary.Days {
		line := fmt.Sprintf("  %-10s %d/%d (%s)", daySummary.Day.Title()+":",
			daySummary.Done, daySummary.Total, weekstats.FormatPercent(daySummary.Percent))
		if daySummary.Total > 0 && daySummary.Done == daySummary.Total {
			line = styles.DoneStyle.Render(line)
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("  %-10s %d/%d (%s)\n", "Week:", summary.Done, summary.Total,
		weekstats.FormatPercent(summary.Percent))
	return nil
}

func dayJSON(daySummary weekstats.DaySummary) map[string]interface{} {
	return map[string]interface{}{
		"day":     string(daySummary.Day),
		"done":    daySummary.Done,
		"total":   daySummary.Total,
		"percent": daySummary.Percent,
	}
}
