// Package cli provides helpers for CLI integration tests.
// It is isolated from the core testutil package so service tests can
// import testutil without pulling in the application container.
package cli

import (
	"testing"
	"time"

	"github.com/vergashev/hafta/internal/app"
	"github.com/vergashev/hafta/internal/config"
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/testutil"
	"github.com/vergashev/hafta/internal/tracker"
)

// SetupCLITest creates an app backed by an empty tracker file in a temp
// directory and returns it together with the tracker path.
func SetupCLITest(t *testing.T) (*app.App, string) {
	t.Helper()

	path := testutil.TempTrackerPath(t)
	testutil.WriteTracker(t, path, models.NewDocument())

	appInstance, err := app.New(config.DefaultConfig(),
		app.WithStorePath(path),
		app.WithClock(func() time.Time { return testutil.TestClock }))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}

	t.Cleanup(func() {
		if err := appInstance.Close(); err != nil {
			t.Logf("Warning: app close error during cleanup: %v", err)
		}
	})

	return appInstance, path
}

// CreateTestHabit creates a habit through the service and returns its ID
func CreateTestHabit(t *testing.T, a *app.App, name string, days ...models.Weekday) string {
	t.Helper()

	item, err := a.Tracker.AddItem(tracker.AddItemRequest{
		Name: name,
		Kind: models.KindHabit,
		Days: days,
	})
	if err != nil {
		t.Fatalf("Failed to create test habit %q: %v", name, err)
	}
	return item.ID
}

// CreateTestTask creates a weekly task through the service and returns its ID
func CreateTestTask(t *testing.T, a *app.App, name string, days ...models.Weekday) string {
	t.Helper()

	item, err := a.Tracker.AddItem(tracker.AddItemRequest{
		Name: name,
		Kind: models.KindTask,
		Days: days,
	})
	if err != nil {
		t.Fatalf("Failed to create test task %q: %v", name, err)
	}
	return item.ID
}
