package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/vergashev/hafta/internal/config"
	"github.com/vergashev/hafta/internal/models"
	"github.com/vergashev/hafta/internal/store"
	"github.com/vergashev/hafta/internal/tracker"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	cfg   *config.Config
	store *store.Store

	// Service layer (business logic)
	Tracker tracker.Service

	// FirstRun reports that no tracker file existed and a default
	// document was seeded.
	FirstRun bool

	// LoadErr holds the corruption error from the initial load, if any.
	// The app continues on an empty document; callers surface the warning.
	LoadErr error
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
//
// A missing tracker file counts as a first run: the document is seeded
// with the default habit list and written out. Any other load failure
// leaves the app on an empty document and is recorded in LoadErr.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	settings := appConfig{
		path: cfg.Storage.Path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	if settings.path == "" {
		path, err := store.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tracker path: %w", err)
		}
		settings.path = path
	}

	st, err := store.New(settings.path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	a := &App{
		cfg:   cfg,
		store: st,
	}

	doc, err := st.Load()
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		a.FirstRun = true
		doc = models.DefaultDocument(settings.now())
		if saveErr := st.Save(doc); saveErr != nil {
			slog.Error("failed to seed tracker file", "path", st.Path(), "error", saveErr)
		}
	default:
		slog.Error("failed to load tracker file", "path", st.Path(), "error", err)
		a.LoadErr = err
	}

	a.Tracker = tracker.NewService(st, doc, tracker.WithClock(settings.now))
	return a, nil
}

// Config returns the loaded application configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Path returns the tracker file path the app operates on.
func (a *App) Path() string {
	return a.store.Path()
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
