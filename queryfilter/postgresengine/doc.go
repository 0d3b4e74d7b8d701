// Package postgresengine provides a PostgreSQL implementation of queryfilter.PredicateFactory
// and a read-only entity store executing the compiled predicates.
//
// Factory builds goqu expressions: every Reference hop of a queryfilter.Path becomes an INNER JOIN,
// contains and doesNotContain become UPPER(column) LIKE '%VALUE%'. EntityStore runs COUNT and key
// queries for those predicates through one of the supported database adapters (pgx, sql.DB, sqlx).
//
// Key features:
//   - Multiple database adapter support (PGX, PGX with read replica, SQL, SQLX)
//   - Joins shared by equal path prefixes, distinct results for to-many references
//   - Prepared statements with positional arguments
//   - Optional logging, metrics and tracing through the dependency-free interfaces of queryfilter
//
// Usage examples:
//
//	db, _ := pgxpool.New(context.Background(), dsn)
//	store, _ := postgresengine.NewEntityStoreFromPGXPool(db, "books", postgresengine.WithLogger(slog.Default()))
//	pf := store.Factory()
//
//	where := queryfilter.Conjunction[postgresengine.Predicate]{}.
//		Add(queryfilter.CompileString(pf, criteria.Title, titlePath)).
//		With(queryfilter.CompileRange(pf, criteria.Price, pricePath)).
//		Predicate(pf)
//
//	total, _ := store.Count(ctx, where)
//	keys, _ := store.FindKeys(ctx, where)
package postgresengine
