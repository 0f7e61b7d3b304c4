package app

import "time"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	path string
	now  func() time.Time
}

// WithStorePath overrides the tracker file path from the configuration
func WithStorePath(path string) Option {
	return func(cfg *appConfig) {
		cfg.path = path
	}
}

// WithClock sets the time source used for seeding and mutations
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
