package postgresengine

import (
	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

// Option defines a functional option for configuring EntityStore.
type Option func(*EntityStore) error

// WithKeyColumn sets the key column of the root table, "id" by default.
// It is used to count distinct root entities and by FindKeys.
func WithKeyColumn(column string) Option {
	return func(es *EntityStore) error {
		if column == "" {
			return ErrEmptyKeyColumn
		}

		es.keyColumn = column

		return nil
	}
}

// WithLogger sets the logger for the EntityStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Result counts and durations (production-safe)
// Warn level: Non-critical issues like failures while closing rows
// Error level: Critical failures that cause operation failures.
func WithLogger(logger queryfilter.Logger) Option {
	return func(es *EntityStore) error {
		es.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the EntityStore.
// It takes precedence over a logger configured with WithLogger, so log records
// can be correlated with the active trace.
func WithContextualLogger(logger queryfilter.ContextualLogger) Option {
	return func(es *EntityStore) error {
		es.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the EntityStore.
// It receives query durations, query counts, database errors and the number of returned rows.
// A queryfilter.ContextualMetricsCollector receives the operation's context as well.
func WithMetrics(collector queryfilter.MetricsCollector) Option {
	return func(es *EntityStore) error {
		es.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the EntityStore.
// One span is created per Count or FindKeys call.
func WithTracing(collector queryfilter.TracingCollector) Option {
	return func(es *EntityStore) error {
		es.tracingCollector = collector
		return nil
	}
}
