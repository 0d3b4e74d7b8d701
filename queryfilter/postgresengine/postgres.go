package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter/postgresengine/internal/adapters"
)

const (
	defaultKeyColumn            = "id"
	castText                    = "TEXT"
	logMsgBuildQueryFailed      = "failed to build query"
	logMsgDBQueryFailed         = "database query execution failed"
	logMsgCloseRowsFailed       = "failed to close database rows"
	logMsgScanRowFailed         = "failed to scan database row"
	logMsgIterateRowsFailed     = "failed to iterate database rows"
	logMsgCountCompleted        = "count completed"
	logMsgFindKeysCompleted     = "find keys completed"
	logMsgSQLExecuted           = "executed sql for: "
	logMsgOperation             = "entity store operation: "
	logAttrError                = "error"
	logAttrQuery                = "query"
	logAttrTable                = "table"
	logAttrRowCount             = "row_count"
	logAttrDurationMS           = "duration_ms"
	operationCount              = "count"
	operationFindKeys           = "find_keys"
	spanNameCount               = "queryfilter.count"
	spanNameFindKeys            = "queryfilter.find_keys"
	spanAttrOperation           = "operation"
	spanAttrTable               = "table"
	spanAttrHasToManyJoin       = "has_to_many_join"
	spanAttrRowCount            = "row_count"
	spanAttrDurationMS          = "duration_ms"
	spanAttrErrorType           = "error_type"
	metricAttrStatus            = "status"
	metricQueryDuration         = "queryfilter_query_duration_seconds"
	metricQueriesTotal          = "queryfilter_queries_total"
	metricDatabaseErrors        = "queryfilter_database_errors_total"
	metricRowsReturned          = "queryfilter_rows_returned"
	statusSuccess               = "success"
	statusError                 = "error"
	errorTypeBuildQuery         = "build_query"
	errorTypeDatabaseQuery      = "database_query"
	errorTypeRowScan            = "row_scan"
	errorTypeRowIteration       = "row_iteration"
	errorTypeContext            = "context_cancelled"
	errorTypeContextDeadline    = "context_deadline_exceeded"
	errorTypeUnknownQueryReason = "unknown"
)

// EntityStore executes compiled filter predicates against the entities of one root table.
// It is read-only and safe for concurrent use.
type EntityStore struct {
	db               adapters.DBAdapter
	factory          Factory
	keyColumn        string
	logger           queryfilter.Logger
	contextualLogger queryfilter.ContextualLogger
	metricsCollector queryfilter.MetricsCollector
	tracingCollector queryfilter.TracingCollector
}

// NewEntityStoreFromPGXPool creates a new EntityStore using a pgx Pool with optional configuration.
func NewEntityStoreFromPGXPool(db *pgxpool.Pool, rootTable string, options ...Option) (EntityStore, error) {
	if db == nil {
		return EntityStore{}, ErrNilDatabaseConnection
	}

	return newEntityStore(adapters.NewPGXAdapter(db), rootTable, options...)
}

// NewEntityStoreFromPGXPoolAndReplica creates a new EntityStore that sends all queries to the replica pool.
func NewEntityStoreFromPGXPoolAndReplica(
	db *pgxpool.Pool,
	replica *pgxpool.Pool,
	rootTable string,
	options ...Option,
) (EntityStore, error) {

	if db == nil || replica == nil {
		return EntityStore{}, ErrNilDatabaseConnection
	}

	return newEntityStore(adapters.NewPGXAdapterWithReplica(db, replica), rootTable, options...)
}

// NewEntityStoreFromSQLDB creates a new EntityStore using a sql.DB with optional configuration.
func NewEntityStoreFromSQLDB(db *sql.DB, rootTable string, options ...Option) (EntityStore, error) {
	if db == nil {
		return EntityStore{}, ErrNilDatabaseConnection
	}

	return newEntityStore(adapters.NewSQLAdapter(db), rootTable, options...)
}

// NewEntityStoreFromSQLX creates a new EntityStore using a sqlx.DB with optional configuration.
func NewEntityStoreFromSQLX(db *sqlx.DB, rootTable string, options ...Option) (EntityStore, error) {
	if db == nil {
		return EntityStore{}, ErrNilDatabaseConnection
	}

	return newEntityStore(adapters.NewSQLXAdapter(db), rootTable, options...)
}

func newEntityStore(db adapters.DBAdapter, rootTable string, options ...Option) (EntityStore, error) {
	if rootTable == "" {
		return EntityStore{}, ErrEmptyTableName
	}

	es := EntityStore{
		db:        db,
		factory:   NewFactory(rootTable),
		keyColumn: defaultKeyColumn,
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EntityStore{}, err
		}
	}

	return es, nil
}

// Factory returns the predicate factory filters must be compiled with for this store.
func (es EntityStore) Factory() Factory {
	return es.factory
}

// Count returns the number of root entities matching the predicate.
// Entities reached through more than one to-many row are counted once.
func (es EntityStore) Count(ctx context.Context, where Predicate) (int64, error) {
	tracer, ctx := es.startTracing(ctx, spanNameCount, operationCount, where)
	metrics := es.startMetrics(ctx, operationCount)

	sqlQuery, args, toSQLErr := es.factory.CountQuery(where, es.keyColumn).Prepared(true).ToSQL()
	if toSQLErr != nil {
		es.logError(ctx, logMsgBuildQueryFailed, toSQLErr)
		metrics.recordError(errorTypeBuildQuery, 0)
		tracer.finishError(errorTypeBuildQuery, 0)

		return 0, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, duration, queryErr := es.executeQuery(ctx, sqlQuery, args, operationCount)
	if queryErr != nil {
		errorType := classifyQueryError(queryErr)
		metrics.recordError(errorType, duration)
		tracer.finishError(errorType, duration)

		return 0, queryErr
	}
	defer es.closeRows(ctx, rows)

	var count int64

	if rows.Next() {
		if scanErr := rows.Scan(&count); scanErr != nil {
			es.logError(ctx, logMsgScanRowFailed, scanErr)
			metrics.recordError(errorTypeRowScan, duration)
			tracer.finishError(errorTypeRowScan, duration)

			return 0, errors.Join(ErrScanningDBRowFailed, scanErr)
		}
	}

	if iterErr := rows.Err(); iterErr != nil {
		es.logError(ctx, logMsgIterateRowsFailed, iterErr)
		metrics.recordError(errorTypeRowIteration, duration)
		tracer.finishError(errorTypeRowIteration, duration)

		return 0, errors.Join(ErrQueryingFailed, iterErr)
	}

	es.logOperation(
		ctx,
		logMsgCountCompleted,
		logAttrTable, es.factory.RootTable(),
		logAttrRowCount, count,
		logAttrDurationMS, es.toMilliseconds(duration),
	)

	metrics.recordSuccess(count, duration)
	tracer.finishSuccess(count, duration)

	return count, nil
}

// FindKeys returns the key column values, rendered as text, of all root entities matching the predicate.
// The keys are unique and ordered by the key column.
func (es EntityStore) FindKeys(ctx context.Context, where Predicate) ([]string, error) {
	tracer, ctx := es.startTracing(ctx, spanNameFindKeys, operationFindKeys, where)
	metrics := es.startMetrics(ctx, operationFindKeys)

	sqlQuery, args, toSQLErr := es.factory.FindKeysQuery(where, es.keyColumn).Prepared(true).ToSQL()
	if toSQLErr != nil {
		es.logError(ctx, logMsgBuildQueryFailed, toSQLErr)
		metrics.recordError(errorTypeBuildQuery, 0)
		tracer.finishError(errorTypeBuildQuery, 0)

		return nil, errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	rows, duration, queryErr := es.executeQuery(ctx, sqlQuery, args, operationFindKeys)
	if queryErr != nil {
		errorType := classifyQueryError(queryErr)
		metrics.recordError(errorType, duration)
		tracer.finishError(errorType, duration)

		return nil, queryErr
	}
	defer es.closeRows(ctx, rows)

	keys := make([]string, 0)

	for rows.Next() {
		var key string

		if scanErr := rows.Scan(&key); scanErr != nil {
			es.logError(ctx, logMsgScanRowFailed, scanErr)
			metrics.recordError(errorTypeRowScan, duration)
			tracer.finishError(errorTypeRowScan, duration)

			return nil, errors.Join(ErrScanningDBRowFailed, scanErr)
		}

		keys = append(keys, key)
	}

	if iterErr := rows.Err(); iterErr != nil {
		es.logError(ctx, logMsgIterateRowsFailed, iterErr)
		metrics.recordError(errorTypeRowIteration, duration)
		tracer.finishError(errorTypeRowIteration, duration)

		return nil, errors.Join(ErrQueryingFailed, iterErr)
	}

	es.logOperation(
		ctx,
		logMsgFindKeysCompleted,
		logAttrTable, es.factory.RootTable(),
		logAttrRowCount, len(keys),
		logAttrDurationMS, es.toMilliseconds(duration),
	)

	metrics.recordSuccess(int64(len(keys)), duration)
	tracer.finishSuccess(int64(len(keys)), duration)

	return keys, nil
}

// executeQuery executes the SQL query and returns rows with timing information.
func (es EntityStore) executeQuery(ctx context.Context, sqlQuery string, args []any, action string) (
	adapters.DBRows,
	time.Duration,
	error,
) {

	start := time.Now()
	rows, queryErr := es.db.Query(ctx, sqlQuery, args...)
	duration := time.Since(start)
	es.logQueryWithDuration(ctx, sqlQuery, action, duration)

	if queryErr != nil {
		es.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)

		return nil, duration, errors.Join(ErrQueryingFailed, queryErr)
	}

	return rows, duration, nil
}

// closeRows safely closes database rows and logs any errors.
func (es EntityStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		es.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

func classifyQueryError(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return errorTypeContext

	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeContextDeadline

	case errors.Is(err, ErrQueryingFailed):
		return errorTypeDatabaseQuery

	default:
		return errorTypeUnknownQueryReason
	}
}
