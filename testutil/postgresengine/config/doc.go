// Package config provides PostgreSQL database configuration for entity store testing.
//
// This package contains factory functions for creating database connections
// using the supported PostgreSQL adapters (pgx.Pool, sql.DB, sqlx.DB)
// with pre-configured test database DSNs.
//
// The DSN can be overridden with the TEST_DSN environment variable.
package config
