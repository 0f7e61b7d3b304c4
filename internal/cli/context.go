package cli

import (
	"context"

	"github.com/vergashev/hafta/internal/app"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appKey contextKey = "app"

// WithApp returns a context carrying an application container.
// Tests use this to inject an app backed by a temporary tracker file.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// FromContext returns the CLI for a command invocation.
// An app injected via WithApp takes priority; otherwise a real CLI is
// initialized from the user's config and tracker file.
func FromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI()
}
