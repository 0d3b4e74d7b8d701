package postgresengine_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter/postgresengine"
	"github.com/AntonStoeckl/queryfilter-go/testutil/fixtures"
	"github.com/AntonStoeckl/queryfilter-go/testutil/postgresengine/config"
	"github.com/AntonStoeckl/queryfilter-go/testutil/postgresengine/helper"
	"github.com/AntonStoeckl/queryfilter-go/testutil/postgresengine/helper/postgreswrapper"
)

// givenLazySQLDB opens a *sql.DB without connecting, sql.Open never dials.
func givenLazySQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("postgres", config.PostgresTestDSN())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func Test_NewEntityStore_RejectsNilConnections(t *testing.T) {
	poolConfig, err := config.PostgresPGXPoolTestConfig()
	require.NoError(t, err)
	poolConfig.MinConns = 0

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	require.NoError(t, err)
	defer pool.Close()

	_, err = postgresengine.NewEntityStoreFromPGXPool(nil, "books")
	assert.ErrorIs(t, err, postgresengine.ErrNilDatabaseConnection)

	_, err = postgresengine.NewEntityStoreFromPGXPoolAndReplica(pool, nil, "books")
	assert.ErrorIs(t, err, postgresengine.ErrNilDatabaseConnection)

	_, err = postgresengine.NewEntityStoreFromSQLDB(nil, "books")
	assert.ErrorIs(t, err, postgresengine.ErrNilDatabaseConnection)

	_, err = postgresengine.NewEntityStoreFromSQLX(nil, "books")
	assert.ErrorIs(t, err, postgresengine.ErrNilDatabaseConnection)
}

func Test_NewEntityStore_RejectsEmptyTableName(t *testing.T) {
	db := givenLazySQLDB(t)

	_, err := postgresengine.NewEntityStoreFromSQLDB(db, "")
	assert.ErrorIs(t, err, postgresengine.ErrEmptyTableName)

	_, err = postgresengine.NewEntityStoreFromSQLX(sqlx.NewDb(db, "postgres"), "")
	assert.ErrorIs(t, err, postgresengine.ErrEmptyTableName)
}

func Test_NewEntityStore_WithKeyColumn(t *testing.T) {
	db := givenLazySQLDB(t)

	_, err := postgresengine.NewEntityStoreFromSQLDB(db, "books", postgresengine.WithKeyColumn(""))
	assert.ErrorIs(t, err, postgresengine.ErrEmptyKeyColumn)

	store, err := postgresengine.NewEntityStoreFromSQLDB(db, "books", postgresengine.WithKeyColumn("isbn"))
	require.NoError(t, err)
	assert.Equal(t, "books", store.Factory().RootTable())
}

func Test_EntityStore_CancelledContext(t *testing.T) {
	// arrange
	store, err := postgresengine.NewEntityStoreFromSQLDB(givenLazySQLDB(t), "books")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	count, countErr := store.Count(ctx, store.Factory().True())
	keys, findErr := store.FindKeys(ctx, store.Factory().True())

	// assert
	assert.ErrorIs(t, countErr, postgresengine.ErrQueryingFailed)
	assert.ErrorIs(t, countErr, context.Canceled)
	assert.Zero(t, count)
	assert.ErrorIs(t, findErr, postgresengine.ErrQueryingFailed)
	assert.Nil(t, keys)
}

/***** integration tests, skipped without a reachable test database *****/

var (
	isbnPath        = queryfilter.MustPath("isbn")
	pricePath       = queryfilter.MustPath("price")
	availablePath   = queryfilter.MustPath("available")
	publishedAtPath = queryfilter.MustPath("published_at")
	idPath          = queryfilter.MustPath("id")
	birthYearPath   = queryfilter.MustPath("birth_year", authorRef)
)

func Test_EntityStore_CountAndFindKeys(t *testing.T) {
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()

	helper.GivenBookCatalog(t, wrapper)

	store, err := wrapper.NewEntityStore("books")
	require.NoError(t, err)

	pf := store.Factory()
	ctx := context.Background()

	must := func(p postgresengine.Predicate, ok bool) postgresengine.Predicate {
		require.True(t, ok)
		return p
	}

	tests := []struct {
		name     string
		where    postgresengine.Predicate
		expected []uuid.UUID
	}{
		{
			name:  "everything",
			where: pf.True(),
			expected: []uuid.UUID{
				fixtures.BookLearningDDDID, fixtures.BookDDIAID, fixtures.BookGoMistakesID,
				fixtures.BookManuscriptID, fixtures.BookNotesID,
			},
		},
		{
			name:     "title contains, case-insensitive",
			where:    must(queryfilter.CompileString(pf, queryfilter.StringFilter{}.WithContains("design"), titlePath)),
			expected: []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookDDIAID},
		},
		{
			name: "pages range",
			where: queryfilter.CompileRange(pf,
				queryfilter.IntFilter{}.WithGreaterThan(300).WithLessThanOrEqual(616), pagesPath),
			expected: []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookDDIAID, fixtures.BookGoMistakesID},
		},
		{
			name:     "isbn not specified",
			where:    must(queryfilter.CompileString(pf, queryfilter.StringFilter{}.WithSpecified(false), isbnPath)),
			expected: []uuid.UUID{fixtures.BookManuscriptID, fixtures.BookNotesID},
		},
		{
			name: "publisher name via author",
			where: must(queryfilter.CompileString(pf,
				queryfilter.StringFilter{}.WithEquals("O'Reilly Media"), publisherNamePath)),
			expected: []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookDDIAID},
		},
		{
			name:     "author name not specified is an inner join",
			where:    must(queryfilter.CompileString(pf, queryfilter.StringFilter{}.WithSpecified(false), authorNamePath)),
			expected: []uuid.UUID{},
		},
		{
			name: "tags in, every book once",
			where: must(queryfilter.CompileString(pf,
				queryfilter.StringFilter{}.WithIn([]string{"architecture", "go"}), tagNamePath)),
			expected: []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookDDIAID, fixtures.BookGoMistakesID},
		},
		{
			name: "tags not in matches any other tag",
			where: must(queryfilter.CompileString(pf,
				queryfilter.StringFilter{}.WithNotIn([]string{"architecture"}), tagNamePath)),
			expected: []uuid.UUID{
				fixtures.BookLearningDDDID, fixtures.BookDDIAID, fixtures.BookGoMistakesID, fixtures.BookNotesID,
			},
		},
		{
			name: "available and cheap",
			where: queryfilter.Conjunction[postgresengine.Predicate]{}.
				Add(queryfilter.CompileFilter(pf, queryfilter.BooleanFilter{}.WithEquals(true), availablePath)).
				With(queryfilter.CompileRange(pf, queryfilter.DoubleFilter{}.WithLessThan(50), pricePath)).
				Predicate(pf),
			expected: []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookNotesID},
		},
		{
			name: "published since 2021",
			where: queryfilter.CompileRange(pf,
				queryfilter.InstantFilter{}.WithGreaterThanOrEqual(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
				publishedAtPath),
			expected: []uuid.UUID{fixtures.BookLearningDDDID, fixtures.BookGoMistakesID, fixtures.BookManuscriptID},
		},
		{
			name: "ids",
			where: must(queryfilter.CompileFilter(pf,
				queryfilter.UUIDFilter{}.WithIn([]uuid.UUID{fixtures.BookManuscriptID, fixtures.BookDDIAID}), idPath)),
			expected: []uuid.UUID{fixtures.BookDDIAID, fixtures.BookManuscriptID},
		},
		{
			name: "author birth year",
			where: queryfilter.CompileRange(pf,
				queryfilter.IntegerFilter{}.WithGreaterThanOrEqual(1986), birthYearPath),
			expected: []uuid.UUID{fixtures.BookGoMistakesID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			count, countErr := store.Count(ctx, tt.where)
			keys, findErr := store.FindKeys(ctx, tt.where)

			// assert
			require.NoError(t, countErr)
			require.NoError(t, findErr)

			expectedKeys := make([]string, 0, len(tt.expected))
			for _, id := range tt.expected {
				expectedKeys = append(expectedKeys, id.String())
			}

			assert.Equal(t, int64(len(tt.expected)), count)
			assert.Equal(t, expectedKeys, keys)
		})
	}
}

func Test_EntityStore_WithKeyColumn(t *testing.T) {
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()

	helper.GivenBookCatalog(t, wrapper)

	store, err := wrapper.NewEntityStore("books", postgresengine.WithKeyColumn("title"))
	require.NoError(t, err)

	where := queryfilter.CompileRange(store.Factory(), queryfilter.IntFilter{}.WithLessThan(100), pagesPath)

	keys, err := store.FindKeys(context.Background(), where)

	require.NoError(t, err)
	assert.Equal(t, []string{"Orphaned Notes", "Untitled Manuscript"}, keys)
}

func Test_EntityStore_UnknownColumnFails(t *testing.T) {
	wrapper := postgreswrapper.CreateWrapperWithTestConfig(t)
	defer wrapper.Close()

	helper.GivenBookCatalog(t, wrapper)

	store, err := wrapper.NewEntityStore("books")
	require.NoError(t, err)

	where, _ := queryfilter.CompileFilter(store.Factory(), queryfilter.BooleanFilter{}.WithEquals(true),
		queryfilter.MustPath("no_such_column"))

	_, countErr := store.Count(context.Background(), where)

	assert.ErrorIs(t, countErr, postgresengine.ErrQueryingFailed)
}
