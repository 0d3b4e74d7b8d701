package fixtures

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter/memengine"
)

// BookEntities returns the books of the catalog as memengine entities. Field names are the column names,
// the author is referenced as "author" (with its "publisher") and the tags as "tags".
func (c Catalog) BookEntities() []memengine.Entity {
	publishers := make(map[uuid.UUID]memengine.Entity, len(c.Publishers))
	for _, p := range c.Publishers {
		publishers[p.ID] = memengine.Entity{
			"id":      p.ID,
			"name":    p.Name,
			"country": optional(p.Country),
		}
	}

	authors := make(map[uuid.UUID]memengine.Entity, len(c.Authors))
	for _, a := range c.Authors {
		authors[a.ID] = memengine.Entity{
			"id":           a.ID,
			"name":         a.Name,
			"birth_year":   optional(a.BirthYear),
			"publisher_id": optional(a.PublisherID),
			"publisher":    lookup(publishers, a.PublisherID),
		}
	}

	tags := make(map[uuid.UUID][]memengine.Entity)
	for _, t := range c.Tags {
		tags[t.BookID] = append(tags[t.BookID], memengine.Entity{
			"id":      t.ID,
			"book_id": t.BookID,
			"name":    t.Name,
		})
	}

	books := make([]memengine.Entity, 0, len(c.Books))
	for _, b := range c.Books {
		books = append(books, memengine.Entity{
			"id":           b.ID,
			"title":        b.Title,
			"isbn":         optional(b.ISBN),
			"price":        b.Price,
			"pages":        b.Pages,
			"published_at": b.PublishedAt,
			"available":    b.Available,
			"author_id":    optional(b.AuthorID),
			"author":       lookup(authors, b.AuthorID),
			"tags":         tags[b.ID],
		})
	}

	return books
}

// optional turns a nil pointer into an untyped nil, so that memengine sees a null value.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

func lookup(entities map[uuid.UUID]memengine.Entity, id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return entities[*id]
}
