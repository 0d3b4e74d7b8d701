// Package adapters provide database adapter implementations for the PostgreSQL entity store.
//
// Three PostgreSQL database libraries are supported: pgx.Pool, sql.DB, and sqlx.DB.
// All adapters execute read queries with positional arguments through the common DBAdapter
// interface, so the entity store works the same with any supported connection type.
package adapters
