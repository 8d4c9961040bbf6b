package anneal

import (
	"log/slog"

	"github.com/katalvlaran/renormtsp/renorm"
)

type config struct {
	observers observers
	logger    *slog.Logger
	builder   *renorm.Builder
}

// Option configures Run.
type Option func(*config)

// WithObserver adds o to the observers of every iteration.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithLogger logs each iteration at debug level and the summary at info level.
// The logger is tagged with component=anneal.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l.With(slog.String("component", "anneal"))
		}
	}
}

// WithBuilder sets the tour builder; the default uses renorm.DefaultOptions.
func WithBuilder(b *renorm.Builder) Option {
	return func(c *config) {
		c.builder = b
	}
}
