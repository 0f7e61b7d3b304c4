package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/app"
	"github.com/vergashev/hafta/internal/cli/export"
	"github.com/vergashev/hafta/internal/cli/item"
	"github.com/vergashev/hafta/internal/cli/stats"
	"github.com/vergashev/hafta/internal/config"
	"github.com/vergashev/hafta/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "hafta",
	Short: "Hafta - a weekly habit and task tracker",
	Long: `Hafta is a terminal tracker for weekly habits and tasks.

Run it without arguments to open the interactive interface, or use the
subcommands for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(stats.StatsCmd())
	rootCmd.AddCommand(export.ExportCmd())
}

// runTUI opens the interactive interface
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() { _ = application.Close() }()

	return tui.Run(application)
}

func Execute() error {
	return rootCmd.Execute()
}
