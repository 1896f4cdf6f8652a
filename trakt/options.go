package trakt

import (
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	doer    Doer
	timeout time.Duration
	logger  zerolog.Logger
	metrics *metrics.Set
}

// WithHTTPClient sets the HTTP client used for every request.
// Timeouts must then be configured on that client; WithTimeout is ignored.
func WithHTTPClient(doer Doer) Option {
	return func(o *clientOptions) {
		o.doer = doer
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMetricsSet registers the request metrics in set instead of a private one.
// Use this to expose them next to an application's own metrics.
func WithMetricsSet(set *metrics.Set) Option {
	return func(o *clientOptions) {
		o.metrics = set
	}
}
