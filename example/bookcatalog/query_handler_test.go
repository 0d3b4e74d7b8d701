package bookcatalog_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/queryfilter-go/example/bookcatalog"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter/postgresengine"
	"github.com/AntonStoeckl/queryfilter-go/testutil/fixtures"
	"github.com/AntonStoeckl/queryfilter-go/testutil/postgresengine/helper"
	"github.com/AntonStoeckl/queryfilter-go/testutil/postgresengine/helper/postgreswrapper"
)

// storeSpy records the predicates it is asked for and never touches a database.
type storeSpy struct {
	calls int
}

func (s *storeSpy) Factory() postgresengine.Factory {
	return postgresengine.NewFactory(bookcatalog.RootTable)
}

func (s *storeSpy) Count(context.Context, postgresengine.Predicate) (int64, error) {
	s.calls++
	return 0, nil
}

func (s *storeSpy) FindKeys(context.Context, postgresengine.Predicate) ([]string, error) {
	s.calls++
	return []string{}, nil
}

func Test_QueryHandler_FailingRestrictionNeverQueries(t *testing.T) {
	spy := &storeSpy{}
	handler := bookcatalog.NewQueryHandler(spy, bookcatalog.OnlyAvailable)

	query := bookcatalog.BuildQuery(bookcatalog.BookCriteria{Available: queryfilter.BooleanFilter{}.WithEquals(false)})

	_, err := handler.Handle(context.Background(), query)
	assert.ErrorIs(t, err, queryfilter.ErrContradiction)

	_, err = handler.Count(context.Background(), query)
	assert.ErrorIs(t, err, queryfilter.ErrContradiction)

	assert.Zero(t, spy.calls)
}

func Test_QueryHandler_MatchesInMemoryResults(t *testing.T) {
	// setup
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()

	helper.GivenBookCatalog(t, wrapper)

	store, err := wrapper.NewEntityStore(bookcatalog.RootTable)
	require.NoError(t, err)

	handler := bookcatalog.NewQueryHandler(store)
	ctx := context.Background()

	for _, tc := range whereCases() {
		t.Run(tc.name, func(t *testing.T) {
			// act
			found, err := handler.Handle(ctx, bookcatalog.BuildQuery(tc.criteria))
			require.NoError(t, err)

			count, err := handler.Count(ctx, bookcatalog.BuildQuery(tc.criteria))
			require.NoError(t, err)

			// assert
			assert.Equal(t, idStrings(memengineMatches(tc.criteria)), found.BookIDs)
			assert.Equal(t, idStrings(tc.expected), found.BookIDs)
			assert.Equal(t, len(tc.expected), found.Count)
			assert.Equal(t, int64(len(tc.expected)), count)
		})
	}
}

func Test_QueryHandler_AppliesRestrictions(t *testing.T) {
	// setup
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()

	helper.GivenBookCatalog(t, wrapper)

	store, err := wrapper.NewEntityStore(bookcatalog.RootTable)
	require.NoError(t, err)

	oreillyOnly := func(c bookcatalog.BookCriteria) (bookcatalog.BookCriteria, error) {
		return bookcatalog.RestrictToPublishers(c, []string{"O'Reilly Media"})
	}

	handler := bookcatalog.NewQueryHandler(store, oreillyOnly, bookcatalog.OnlyAvailable)

	// act
	query, err := bookcatalog.BuildQueryFromParams(url.Values{"price.lessThan": {"55"}})
	require.NoError(t, err)

	found, err := handler.Handle(context.Background(), query)
	require.NoError(t, err)

	// assert
	assert.Equal(t, idStrings([]uuid.UUID{fixtures.BookLearningDDDID}), found.BookIDs)

	// act
	query, err = bookcatalog.BuildQueryFromJSON([]byte(`{"publisherName": {"equals": "Manning"}}`))
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), query)

	// assert
	assert.ErrorIs(t, err, queryfilter.ErrUnauthorized)
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}
