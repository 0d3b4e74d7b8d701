// Package fixtures contains a small book catalog for entity store testing.
//
// The catalog consists of publishers, authors, books and tags:
//
//	books.author_id   -> authors.id
//	authors.publisher_id -> publishers.id
//	tags.book_id      -> books.id (to-many from books)
//
// It is provided as plain records for seeding PostgreSQL and as memengine entities
// with the same field names, so that a filter compiled for either engine selects the same books.
//
// This is testing infrastructure - not production domain code.
package fixtures
