// Package postgreswrapper provides test utilities for abstracting over the different PostgreSQL database adapters.
//
// This package enables testing of the entity store across multiple database drivers
// (pgx, sql.DB, sqlx.DB) using a common Wrapper interface. The adapter type is determined
// by the ADAPTER_TYPE environment variable, so the same test suite runs against all of them:
//
//	ADAPTER_TYPE=pgx.pool          (default)
//	ADAPTER_TYPE=pgx.pool.replica  (the test pool doubles as replica)
//	ADAPTER_TYPE=sql.db
//	ADAPTER_TYPE=sqlx.db
//
// Usage:
//
//	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t) // skips the test if PostgreSQL is unreachable
//	defer wrapper.Close()
//
//	store, err := wrapper.NewEntityStore("books")
package postgreswrapper
