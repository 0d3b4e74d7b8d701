package postgresengine

import (
	"errors"
)

// ErrNilDatabaseConnection is returned when a nil database connection is supplied.
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")

// ErrEmptyTableName is returned when an empty root table name is supplied.
var ErrEmptyTableName = errors.New("root table name must not be empty")

// ErrEmptyKeyColumn is returned when an empty key column name is supplied.
var ErrEmptyKeyColumn = errors.New("key column name must not be empty")

// ErrBuildingQueryFailed is returned when goqu fails to render a query.
var ErrBuildingQueryFailed = errors.New("building the query failed")

// ErrQueryingFailed is returned when the database fails to execute a query.
var ErrQueryingFailed = errors.New("querying the entity store failed")

// ErrScanningDBRowFailed is returned when a result row cannot be scanned.
var ErrScanningDBRowFailed = errors.New("scanning the db row failed")
