package mapping

import "go.viam.com/beaconmap/logging"

// Option configures Build.
type Option func(*builder)

// WithConfig replaces DefaultConfig.
func WithConfig(config Config) Option {
	return func(b *builder) {
		b.config = config
	}
}

// WithLogger sets the logger. Without it nothing is logged.
func WithLogger(logger logging.Logger) Option {
	return func(b *builder) {
		b.logger = logger
	}
}
