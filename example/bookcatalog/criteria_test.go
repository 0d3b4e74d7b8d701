package bookcatalog_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/queryfilter-go/example/bookcatalog"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
	"github.com/AntonStoeckl/queryfilter-go/testutil/fixtures"
)

func Test_ParseCriteria(t *testing.T) {
	values, err := url.ParseQuery(
		"title.contains=design" +
			"&price.lessThan=50.5&price.greaterThanOrEqual=10" +
			"&pages.in=342,616&pages.in=384" +
			"&publishedAt.greaterThan=2020-01-01T00:00:00Z" +
			"&available.equals=true" +
			"&id.notEquals=" + fixtures.BookNotesID.String() +
			"&publisherName.in=Manning,O'Reilly Media" +
			"&authorBirthYear.specified=true" +
			"&tag.doesNotContain=notes")
	require.NoError(t, err)

	criteria, err := bookcatalog.ParseCriteria(values)
	require.NoError(t, err)

	contains, _ := criteria.Title.Contains()
	assert.Equal(t, "design", contains)

	lessThan, _ := criteria.Price.LessThan()
	assert.Equal(t, 50.5, lessThan)

	greaterThanOrEqual, _ := criteria.Price.GreaterThanOrEqual()
	assert.Equal(t, 10.0, greaterThanOrEqual)

	assert.Equal(t, []int{342, 616, 384}, criteria.Pages.In())

	publishedAfter, _ := criteria.PublishedAt.GreaterThan()
	assert.True(t, publishedAfter.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))

	available, ok := criteria.Available.Equals()
	assert.True(t, ok)
	assert.True(t, available)

	notEquals, _ := criteria.ID.NotEquals()
	assert.Equal(t, fixtures.BookNotesID, notEquals)

	assert.Equal(t, []string{"Manning", "O'Reilly Media"}, criteria.PublisherName.In())

	specified, _ := criteria.AuthorBirthYear.Specified()
	assert.True(t, specified)

	doesNotContain, _ := criteria.Tag.DoesNotContain()
	assert.Equal(t, "notes", doesNotContain)

	assert.True(t, criteria.ISBN.IsEmpty())
	assert.True(t, criteria.AuthorName.IsEmpty())
}

func Test_ParseCriteria_NoParametersIsEmpty(t *testing.T) {
	criteria, err := bookcatalog.ParseCriteria(url.Values{"page": {"2"}})
	require.NoError(t, err)

	assert.True(t, criteria.IsEmpty())
}

func Test_ParseCriteria_ReportsEveryMalformedParameter(t *testing.T) {
	values := url.Values{
		"price.lessThan":   {"cheap"},
		"id.equals":        {"not-a-uuid"},
		"title.contains":   {" "},
		"available.equals": {"true"},
	}

	_, err := bookcatalog.ParseCriteria(values)
	require.Error(t, err)

	assert.ErrorIs(t, err, queryfilter.ErrInvalidArgument)
	assert.True(t, queryfilter.IsClientError(err))
	assert.Contains(t, err.Error(), "price.lessThan")
	assert.Contains(t, err.Error(), "id.equals")
	assert.Contains(t, err.Error(), "title.contains")
	assert.NotContains(t, err.Error(), "available.equals")
}

func Test_DecodeCriteria(t *testing.T) {
	criteria, err := bookcatalog.DecodeCriteria([]byte(`{
		"title": {"contains": "go"},
		"price": {"greaterThan": 40, "lessThanOrEqual": 45},
		"publishedAt": {"lessThan": "2023-01-01T00:00:00Z"},
		"tag": {"in": ["go", "ddd"]},
		"unknown": {"equals": 1}
	}`))
	require.NoError(t, err)

	contains, _ := criteria.Title.Contains()
	assert.Equal(t, "go", contains)

	greaterThan, _ := criteria.Price.GreaterThan()
	assert.Equal(t, 40.0, greaterThan)

	lessThanOrEqual, _ := criteria.Price.LessThanOrEqual()
	assert.Equal(t, 45.0, lessThanOrEqual)

	lessThan, _ := criteria.PublishedAt.LessThan()
	assert.True(t, lessThan.Equal(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, []string{"go", "ddd"}, criteria.Tag.In())

	assert.Equal(t, []uuid.UUID{fixtures.BookGoMistakesID}, memengineMatches(criteria))
}

func Test_DecodeCriteria_RejectsMalformedJSON(t *testing.T) {
	_, err := bookcatalog.DecodeCriteria([]byte(`{"price": {"lessThan": "cheap"}}`))

	assert.ErrorIs(t, err, queryfilter.ErrInvalidArgument)
}

func Test_EncodeCriteria_RoundTrip(t *testing.T) {
	original := bookcatalog.BookCriteria{
		Title:     queryfilter.StringFilter{}.WithContains("design").WithNotEquals("Untitled"),
		Pages:     queryfilter.IntFilter{}.WithGreaterThan(100),
		Available: queryfilter.BooleanFilter{}.WithSpecified(true),
		Tag:       queryfilter.StringFilter{}.WithNotIn([]string{"notes"}),
	}

	data, err := bookcatalog.EncodeCriteria(original)
	require.NoError(t, err)

	decoded, err := bookcatalog.DecodeCriteria(data)
	require.NoError(t, err)

	assert.True(t, original.Title.Equal(decoded.Title))
	assert.True(t, original.Pages.Equal(decoded.Pages))
	assert.True(t, original.Available.Equal(decoded.Available))
	assert.True(t, original.Tag.Equal(decoded.Tag))
	assert.True(t, decoded.Price.IsEmpty())
}
