package postgresengine

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

// === Logging ===
// A configured contextual logger takes precedence over the plain logger.

// logQueryWithDuration logs SQL queries with execution time at debug level if a logger is configured.
func (es EntityStore) logQueryWithDuration(
	ctx context.Context,
	sqlQuery string,
	action string,
	duration time.Duration,
) {
	args := []any{logAttrDurationMS, es.toMilliseconds(duration), logAttrQuery, sqlQuery}

	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)

	case es.logger != nil:
		es.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (es EntityStore) logOperation(ctx context.Context, action string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)

	case es.logger != nil:
		es.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (es EntityStore) logWarn(ctx context.Context, message string, args ...any) {
	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.WarnContext(ctx, message, args...)

	case es.logger != nil:
		es.logger.Warn(message, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (es EntityStore) logError(
	ctx context.Context,
	message string,
	err error,
	args ...any,
) {
	allArgs := []any{logAttrError, err.Error(), logAttrTable, es.factory.RootTable()}
	allArgs = append(allArgs, args...)

	switch {
	case es.contextualLogger != nil:
		es.contextualLogger.ErrorContext(ctx, message, allArgs...)

	case es.logger != nil:
		es.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (es EntityStore) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// === Metrics Observer Pattern ===

// queryMetricsObserver encapsulates the metrics collection for one Count or FindKeys call.
type queryMetricsObserver struct {
	collector queryfilter.MetricsCollector
	ctx       context.Context
	operation string
}

// startMetrics creates a new metrics observer for the given operation.
func (es EntityStore) startMetrics(ctx context.Context, operation string) *queryMetricsObserver {
	return &queryMetricsObserver{
		collector: es.metricsCollector,
		ctx:       ctx,
		operation: operation,
	}
}

// recordSuccess records duration, query count and number of returned rows of a successful operation.
func (qmo *queryMetricsObserver) recordSuccess(rowCount int64, duration time.Duration) {
	if qmo.collector == nil {
		return
	}

	labels := qmo.labels(statusSuccess)
	qmo.recordDuration(metricQueryDuration, duration, labels)
	qmo.incrementCounter(metricQueriesTotal, labels)
	qmo.recordValue(metricRowsReturned, float64(rowCount), labels)
}

// recordError records duration, query count and the database error of a failed operation.
func (qmo *queryMetricsObserver) recordError(errorType string, duration time.Duration) {
	if qmo.collector == nil {
		return
	}

	labels := qmo.labels(statusError)
	qmo.recordDuration(metricQueryDuration, duration, labels)
	qmo.incrementCounter(metricQueriesTotal, labels)

	errorLabels := qmo.labels(statusError)
	errorLabels[spanAttrErrorType] = errorType
	qmo.incrementCounter(metricDatabaseErrors, errorLabels)
}

func (qmo *queryMetricsObserver) labels(status string) map[string]string {
	return map[string]string{
		spanAttrOperation: qmo.operation,
		metricAttrStatus:  status,
	}
}

// Use context-aware methods if available.

func (qmo *queryMetricsObserver) recordDuration(metric string, duration time.Duration, labels map[string]string) {
	if contextual, ok := qmo.collector.(queryfilter.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(qmo.ctx, metric, duration, labels)
		return
	}

	qmo.collector.RecordDuration(metric, duration, labels)
}

func (qmo *queryMetricsObserver) incrementCounter(metric string, labels map[string]string) {
	if contextual, ok := qmo.collector.(queryfilter.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(qmo.ctx, metric, labels)
		return
	}

	qmo.collector.IncrementCounter(metric, labels)
}

func (qmo *queryMetricsObserver) recordValue(metric string, value float64, labels map[string]string) {
	if contextual, ok := qmo.collector.(queryfilter.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(qmo.ctx, metric, value, labels)
		return
	}

	qmo.collector.RecordValue(metric, value, labels)
}

// === Tracing Observer Pattern ===

// queryTracingObserver encapsulates the span lifecycle of one Count or FindKeys call.
type queryTracingObserver struct {
	collector queryfilter.TracingCollector
	span      queryfilter.SpanContext
}

// startTracing starts a span if the tracing collector is configured.
func (es EntityStore) startTracing(
	ctx context.Context,
	spanName string,
	operation string,
	where Predicate,
) (*queryTracingObserver, context.Context) {

	if es.tracingCollector == nil {
		return &queryTracingObserver{}, ctx
	}

	newCtx, span := es.tracingCollector.StartSpan(ctx, spanName, map[string]string{
		spanAttrOperation:     operation,
		spanAttrTable:         es.factory.RootTable(),
		spanAttrHasToManyJoin: strconv.FormatBool(where.HasToManyJoin()),
	})

	return &queryTracingObserver{collector: es.tracingCollector, span: span}, newCtx
}

// finishSuccess completes the span with the number of returned rows.
func (qto *queryTracingObserver) finishSuccess(rowCount int64, duration time.Duration) {
	if qto.span == nil {
		return
	}

	rows := strconv.FormatInt(rowCount, 10)

	qto.span.SetStatus(statusSuccess)
	qto.span.AddAttribute(spanAttrRowCount, rows)
	qto.span.AddAttribute(spanAttrDurationMS, formatDurationMS(duration))

	qto.collector.FinishSpan(qto.span, statusSuccess, map[string]string{spanAttrRowCount: rows})
}

// finishError completes the span with error details.
func (qto *queryTracingObserver) finishError(errorType string, duration time.Duration) {
	if qto.span == nil {
		return
	}

	qto.span.SetStatus(statusError)
	qto.span.AddAttribute(spanAttrErrorType, errorType)

	if duration > 0 {
		qto.span.AddAttribute(spanAttrDurationMS, formatDurationMS(duration))
	}

	qto.collector.FinishSpan(qto.span, statusError, map[string]string{spanAttrErrorType: errorType})
}

func formatDurationMS(duration time.Duration) string {
	return fmt.Sprintf("%.2f", float64(duration.Nanoseconds())/1e6)
}
