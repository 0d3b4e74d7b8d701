package helper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/queryfilter-go/testutil/fixtures"
)

// Executor executes a statement without returning rows, see postgreswrapper.Wrapper.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) error
}

var schemaStatements = []string{
	`DROP TABLE IF EXISTS tags, books, authors, publishers`,
	`CREATE TABLE publishers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT
	)`,
	`CREATE TABLE authors (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		birth_year INTEGER,
		publisher_id UUID REFERENCES publishers (id)
	)`,
	`CREATE TABLE books (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		isbn TEXT,
		price DOUBLE PRECISION NOT NULL,
		pages INTEGER NOT NULL,
		published_at TIMESTAMPTZ NOT NULL,
		available BOOLEAN NOT NULL,
		author_id UUID REFERENCES authors (id)
	)`,
	`CREATE TABLE tags (
		id UUID PRIMARY KEY,
		book_id UUID NOT NULL REFERENCES books (id),
		name TEXT NOT NULL
	)`,
}

const (
	insertPublisher = `INSERT INTO publishers (id, name, country) VALUES ($1, $2, $3)`
	insertAuthor    = `INSERT INTO authors (id, name, birth_year, publisher_id) VALUES ($1, $2, $3, $4)`
	insertBook      = `INSERT INTO books (id, title, isbn, price, pages, published_at, available, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	insertTag = `INSERT INTO tags (id, book_id, name) VALUES ($1, $2, $3)`
)

// GivenBookCatalog (re)creates the book catalog tables and inserts the fixture catalog.
func GivenBookCatalog(t testing.TB, db Executor) fixtures.Catalog {
	t.Helper()

	catalog := fixtures.BookCatalog()
	require.NoError(t, SeedBookCatalog(context.Background(), db, catalog), "error in arranging test data")

	return catalog
}

// SeedBookCatalog (re)creates the book catalog tables and inserts the given catalog.
func SeedBookCatalog(ctx context.Context, db Executor, catalog fixtures.Catalog) error {
	for _, statement := range schemaStatements {
		if err := db.Exec(ctx, statement); err != nil {
			return err
		}
	}

	for _, p := range catalog.Publishers {
		if err := db.Exec(ctx, insertPublisher, p.ID.String(), p.Name, p.Country); err != nil {
			return err
		}
	}

	for _, a := range catalog.Authors {
		if err := db.Exec(ctx, insertAuthor, a.ID.String(), a.Name, a.BirthYear, uuidOrNil(a.PublisherID)); err != nil {
			return err
		}
	}

	for _, b := range catalog.Books {
		err := db.Exec(
			ctx,
			insertBook,
			b.ID.String(), b.Title, b.ISBN, b.Price, b.Pages, b.PublishedAt, b.Available, uuidOrNil(b.AuthorID),
		)
		if err != nil {
			return err
		}
	}

	for _, tag := range catalog.Tags {
		if err := db.Exec(ctx, insertTag, tag.ID.String(), tag.BookID.String(), tag.Name); err != nil {
			return err
		}
	}

	return nil
}

// uuidOrNil renders the id as text, so that all adapters bind it the same way.
func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return id.String()
}
