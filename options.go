package vector

import "go.uber.org/zap"

// Option configures a Vector at construction.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used to report growth and allocation failures.
// Growth and release are logged at Debug, failures at Error.
// A nil logger leaves the default no-op logger in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
