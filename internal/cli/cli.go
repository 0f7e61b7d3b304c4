package cli

import (
	"fmt"
	"os"

	"github.com/vergashev/hafta/internal/app"
	"github.com/vergashev/hafta/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App
}

// NewCLI initializes the CLI with config and the tracker file
func NewCLI() (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	if application.LoadErr != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Warning: the tracker file at %s is corrupt; starting with an empty week\n",
			application.Path())
	}

	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
