package bookcatalog

import (
	"context"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter/postgresengine"
)

// QueriesBooks is the part of postgresengine.EntityStore the QueryHandler needs.
type QueriesBooks interface {
	Factory() postgresengine.Factory
	Count(ctx context.Context, where postgresengine.Predicate) (int64, error)
	FindKeys(ctx context.Context, where postgresengine.Predicate) ([]string, error)
}

// Restriction narrows criteria before they are compiled, e.g. to what the caller is allowed to see.
type Restriction func(c BookCriteria) (BookCriteria, error)

// QueryHandler answers book searches against an entity store rooted at the books table.
type QueryHandler struct {
	store        QueriesBooks
	restrictions []Restriction
}

// NewQueryHandler creates a QueryHandler. The restrictions are applied in order to every query.
func NewQueryHandler(store QueriesBooks, restrictions ...Restriction) QueryHandler {
	return QueryHandler{
		store:        store,
		restrictions: restrictions,
	}
}

// Handle finds the ids of all books matching the query, ordered by id.
func (h QueryHandler) Handle(ctx context.Context, query Query) (FoundBooks, error) {
	where, err := h.where(query)
	if err != nil {
		return FoundBooks{}, err
	}

	ids, err := h.store.FindKeys(ctx, where)
	if err != nil {
		return FoundBooks{}, err
	}

	return FoundBooks{BookIDs: ids, Count: len(ids)}, nil
}

// Count counts the books matching the query without loading them.
func (h QueryHandler) Count(ctx context.Context, query Query) (int64, error) {
	where, err := h.where(query)
	if err != nil {
		return 0, err
	}

	return h.store.Count(ctx, where)
}

func (h QueryHandler) where(query Query) (postgresengine.Predicate, error) {
	criteria := query.Criteria

	for _, restrict := range h.restrictions {
		var err error

		criteria, err = restrict(criteria)
		if err != nil {
			return postgresengine.Predicate{}, err
		}
	}

	return Where(h.store.Factory(), criteria), nil
}
