// Package helper provides testing utilities for PostgreSQL entity store testing.
//
// It creates the book catalog schema and seeds it with the rows of the fixtures package.
package helper
