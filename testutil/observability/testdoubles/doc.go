// Package testdoubles provides test doubles (spies) for the queryfilter observability interfaces.
//
// This package contains spy implementations used by the entity store tests:
//   - LogHandlerSpy: captures slog records, so a *slog.Logger can be passed as Logger or ContextualLogger
//   - ContextualLoggerSpy: captures contextual logging calls together with their context
//   - MetricsCollectorSpy: captures metrics recording calls, optionally through the contextual methods
//   - TracingCollectorSpy: captures started and finished spans
//
// They enable testing of the observability instrumentation without any telemetry backend.
package testdoubles
