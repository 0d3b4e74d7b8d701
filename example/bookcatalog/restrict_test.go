package bookcatalog_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/queryfilter-go/example/bookcatalog"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
	"github.com/AntonStoeckl/queryfilter-go/testutil/fixtures"
)

func Test_RestrictToPublishers(t *testing.T) {
	allowed := []string{"Manning", "Heise"}

	t.Run("no publisher requested narrows to the allowed ones", func(t *testing.T) {
		criteria, err := bookcatalog.RestrictToPublishers(bookcatalog.BookCriteria{}, allowed)
		require.NoError(t, err)

		assert.Equal(t, allowed, criteria.PublisherName.In())
		assert.Equal(t, []uuid.UUID{fixtures.BookGoMistakesID}, memengineMatches(criteria))
	})

	t.Run("a single allowed publisher collapses into equals", func(t *testing.T) {
		criteria, err := bookcatalog.RestrictToPublishers(bookcatalog.BookCriteria{}, []string{"Manning"})
		require.NoError(t, err)

		equals, ok := criteria.PublisherName.Equals()
		assert.True(t, ok)
		assert.Equal(t, "Manning", equals)
		assert.Nil(t, criteria.PublisherName.In())
	})

	t.Run("a requested publisher matching the single allowed one collapses into equals", func(t *testing.T) {
		requested := bookcatalog.BookCriteria{PublisherName: queryfilter.StringFilter{}.WithIn([]string{"Manning"})}

		criteria, err := bookcatalog.RestrictToPublishers(requested, []string{"Manning"})
		require.NoError(t, err)

		equals, ok := criteria.PublisherName.Equals()
		assert.True(t, ok)
		assert.Equal(t, "Manning", equals)
		assert.Nil(t, criteria.PublisherName.In())
		assert.Equal(t, []uuid.UUID{fixtures.BookGoMistakesID}, memengineMatches(criteria))
	})

	t.Run("an allowed requested publisher is kept", func(t *testing.T) {
		requested := bookcatalog.BookCriteria{PublisherName: queryfilter.StringFilter{}.WithEquals("Heise")}

		criteria, err := bookcatalog.RestrictToPublishers(requested, allowed)
		require.NoError(t, err)

		assert.True(t, requested.PublisherName.Equal(criteria.PublisherName))
		assert.Empty(t, memengineMatches(criteria))
	})

	t.Run("a foreign requested publisher is forbidden", func(t *testing.T) {
		requested := bookcatalog.BookCriteria{
			PublisherName: queryfilter.StringFilter{}.WithIn([]string{"Manning", "O'Reilly Media"}),
		}

		_, err := bookcatalog.RestrictToPublishers(requested, allowed)

		assert.ErrorIs(t, err, queryfilter.ErrUnauthorized)
		assert.True(t, queryfilter.IsForbidden(err))
	})

	t.Run("nothing allowed is an empty constraint", func(t *testing.T) {
		_, err := bookcatalog.RestrictToPublishers(bookcatalog.BookCriteria{}, nil)

		assert.ErrorIs(t, err, queryfilter.ErrEmptyConstraint)
	})
}

func Test_NarrowToTags(t *testing.T) {
	allowed := []string{"architecture", "go"}

	criteria, err := bookcatalog.NarrowToTags(bookcatalog.BookCriteria{
		Tag: queryfilter.StringFilter{}.WithIn([]string{"notes", "go", "ddd"}),
	}, allowed)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, criteria.Tag.In())

	criteria, err = bookcatalog.NarrowToTags(bookcatalog.BookCriteria{
		Tag: queryfilter.StringFilter{}.WithIn([]string{"notes"}),
	}, allowed)
	require.NoError(t, err)
	assert.Equal(t, allowed, criteria.Tag.In())
	assert.Equal(t, []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookDDIAID, fixtures.BookGoMistakesID}, memengineMatches(criteria))
}

func Test_CapPrice(t *testing.T) {
	criteria := bookcatalog.CapPrice(bookcatalog.BookCriteria{}, 45)
	limit, _ := criteria.Price.LessThanOrEqual()
	assert.Equal(t, 45.0, limit)

	criteria = bookcatalog.CapPrice(bookcatalog.BookCriteria{Price: queryfilter.DoubleFilter{}.WithLessThanOrEqual(10)}, 45)
	limit, _ = criteria.Price.LessThanOrEqual()
	assert.Equal(t, 10.0, limit, "a stricter requested limit is kept")

	criteria = bookcatalog.CapPrice(bookcatalog.BookCriteria{Price: queryfilter.DoubleFilter{}.WithLessThanOrEqual(100)}, 45)
	limit, _ = criteria.Price.LessThanOrEqual()
	assert.Equal(t, 45.0, limit, "a looser requested limit is lowered")

	assert.Equal(t,
		[]uuid.UUID{fixtures.BookGoMistakesID, fixtures.BookManuscriptID, fixtures.BookNotesID},
		memengineMatches(criteria))
}

func Test_PublishedSince(t *testing.T) {
	since := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	criteria, err := bookcatalog.PublishedSince(bookcatalog.BookCriteria{}, since)
	require.NoError(t, err)

	earliest, ok := criteria.PublishedAt.GreaterThanOrEqual()
	require.True(t, ok)
	assert.True(t, earliest.Equal(since))

	later := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	criteria, err = bookcatalog.PublishedSince(bookcatalog.BookCriteria{
		PublishedAt: queryfilter.InstantFilter{}.WithGreaterThanOrEqual(later),
	}, since)
	require.NoError(t, err)

	earliest, _ = criteria.PublishedAt.GreaterThanOrEqual()
	assert.True(t, earliest.Equal(later))

	_, err = bookcatalog.PublishedSince(bookcatalog.BookCriteria{
		PublishedAt: queryfilter.InstantFilter{}.WithGreaterThanOrEqual(time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}, since)
	assert.ErrorIs(t, err, queryfilter.ErrUnauthorized)
}

func Test_OnlyAvailable(t *testing.T) {
	criteria, err := bookcatalog.OnlyAvailable(bookcatalog.BookCriteria{})
	require.NoError(t, err)
	assert.Equal(t,
		[]uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookDDIAID, fixtures.BookNotesID},
		memengineMatches(criteria))

	_, err = bookcatalog.OnlyAvailable(bookcatalog.BookCriteria{Available: queryfilter.BooleanFilter{}.WithEquals(false)})
	assert.ErrorIs(t, err, queryfilter.ErrContradiction)
}
