package tracker

import "time"

// Option is a functional option for configuring the tracker service
type Option func(*service)

// WithClock overrides the time source. Tests use it to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}
