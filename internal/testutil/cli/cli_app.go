package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vergashev/hafta/internal/app"
	clipkg "github.com/vergashev/hafta/internal/cli"
	"github.com/vergashev/hafta/internal/testutil"
)

// ExecuteCLICommand executes a CLI command against a test app instance.
// The app is injected through the command context so commands skip the
// real config and tracker file lookup.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := clipkg.WithApp(context.Background(), testApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}
