package fixtures

import (
	"time"

	"github.com/google/uuid"
)

// Publisher is a row of the publishers table.
type Publisher struct {
	ID      uuid.UUID
	Name    string
	Country *string
}

// Author is a row of the authors table.
type Author struct {
	ID          uuid.UUID
	Name        string
	BirthYear   *int32
	PublisherID *uuid.UUID
}

// Book is a row of the books table.
type Book struct {
	ID          uuid.UUID
	Title       string
	ISBN        *string
	Price       float64
	Pages       int32
	PublishedAt time.Time
	Available   bool
	AuthorID    *uuid.UUID
}

// Tag is a row of the tags table.
type Tag struct {
	ID     uuid.UUID
	BookID uuid.UUID
	Name   string
}

// Catalog holds all fixture rows.
type Catalog struct {
	Publishers []Publisher
	Authors    []Author
	Books      []Book
	Tags       []Tag
}

// Fixed ids so that tests can refer to single records.
var (
	PublisherOReillyID = uuid.MustParse("01900000-0000-7000-8000-000000000001")
	PublisherManningID = uuid.MustParse("01900000-0000-7000-8000-000000000002")
	PublisherHeiseID   = uuid.MustParse("01900000-0000-7000-8000-000000000003")

	AuthorKhononovID  = uuid.MustParse("01900000-0000-7000-8000-000000000011")
	AuthorKleppmannID = uuid.MustParse("01900000-0000-7000-8000-000000000012")
	AuthorHarsanyiID  = uuid.MustParse("01900000-0000-7000-8000-000000000013")
	AuthorAnonymousID = uuid.MustParse("01900000-0000-7000-8000-000000000014")

	BookLearningDDDID = uuid.MustParse("01900000-0000-7000-8000-000000000021")
	BookDDIAID        = uuid.MustParse("01900000-0000-7000-8000-000000000022")
	BookGoMistakesID  = uuid.MustParse("01900000-0000-7000-8000-000000000023")
	BookManuscriptID  = uuid.MustParse("01900000-0000-7000-8000-000000000024")
	BookNotesID       = uuid.MustParse("01900000-0000-7000-8000-000000000025")
)

// BookCatalog returns the fixture catalog. Every call returns fresh slices.
//
//	title                                   author            publisher       price  pages  available  tags
//	Learning Domain-Driven Design           Vlad Khononov     O'Reilly Media  49.99  342    yes        ddd, architecture
//	Designing Data-Intensive Applications   Martin Kleppmann  O'Reilly Media  59.99  616    yes        databases, architecture
//	100 Go Mistakes and How to Avoid Them   Teiva Harsanyi    Manning         44.99  384    no         go
//	Untitled Manuscript                     Anonymous         -               0      12     no         -
//	Orphaned Notes                          -                 -               9.99   80     yes        notes
func BookCatalog() Catalog {
	return Catalog{
		Publishers: []Publisher{
			{ID: PublisherOReillyID, Name: "O'Reilly Media", Country: ptr("US")},
			{ID: PublisherManningID, Name: "Manning", Country: ptr("US")},
			{ID: PublisherHeiseID, Name: "Heise", Country: nil},
		},
		Authors: []Author{
			{ID: AuthorKhononovID, Name: "Vlad Khononov", BirthYear: ptr(int32(1985)), PublisherID: ptr(PublisherOReillyID)},
			{ID: AuthorKleppmannID, Name: "Martin Kleppmann", BirthYear: nil, PublisherID: ptr(PublisherOReillyID)},
			{ID: AuthorHarsanyiID, Name: "Teiva Harsanyi", BirthYear: ptr(int32(1986)), PublisherID: ptr(PublisherManningID)},
			{ID: AuthorAnonymousID, Name: "Anonymous", BirthYear: nil, PublisherID: nil},
		},
		Books: []Book{
			{
				ID:          BookLearningDDDID,
				Title:       "Learning Domain-Driven Design",
				ISBN:        ptr("978-1-098-10013-1"),
				Price:       49.99,
				Pages:       342,
				PublishedAt: date(2021, time.October, 5),
				Available:   true,
				AuthorID:    ptr(AuthorKhononovID),
			},
			{
				ID:          BookDDIAID,
				Title:       "Designing Data-Intensive Applications",
				ISBN:        ptr("978-1-449-37332-0"),
				Price:       59.99,
				Pages:       616,
				PublishedAt: date(2017, time.March, 16),
				Available:   true,
				AuthorID:    ptr(AuthorKleppmannID),
			},
			{
				ID:          BookGoMistakesID,
				Title:       "100 Go Mistakes and How to Avoid Them",
				ISBN:        ptr("978-1-617-29959-4"),
				Price:       44.99,
				Pages:       384,
				PublishedAt: date(2022, time.August, 16),
				Available:   false,
				AuthorID:    ptr(AuthorHarsanyiID),
			},
			{
				ID:          BookManuscriptID,
				Title:       "Untitled Manuscript",
				ISBN:        nil,
				Price:       0,
				Pages:       12,
				PublishedAt: date(2024, time.January, 1),
				Available:   false,
				AuthorID:    ptr(AuthorAnonymousID),
			},
			{
				ID:          BookNotesID,
				Title:       "Orphaned Notes",
				ISBN:        nil,
				Price:       9.99,
				Pages:       80,
				PublishedAt: date(2020, time.June, 1),
				Available:   true,
				AuthorID:    nil,
			},
		},
		Tags: []Tag{
			{ID: uuid.MustParse("01900000-0000-7000-8000-000000000031"), BookID: BookLearningDDDID, Name: "ddd"},
			{ID: uuid.MustParse("01900000-0000-7000-8000-000000000032"), BookID: BookLearningDDDID, Name: "architecture"},
			{ID: uuid.MustParse("01900000-0000-7000-8000-000000000033"), BookID: BookDDIAID, Name: "databases"},
			{ID: uuid.MustParse("01900000-0000-7000-8000-000000000034"), BookID: BookDDIAID, Name: "architecture"},
			{ID: uuid.MustParse("01900000-0000-7000-8000-000000000035"), BookID: BookGoMistakesID, Name: "go"},
			{ID: uuid.MustParse("01900000-0000-7000-8000-000000000036"), BookID: BookNotesID, Name: "notes"},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
