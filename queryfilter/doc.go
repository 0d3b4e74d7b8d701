// Package queryfilter provides declarative, optional field constraints and compiles them
// into composable predicates of an entity store.
//
// A filter constrains one scalar field:
//   - Filter: equals, notEquals, in, notIn, specified
//   - RangeFilter: Filter plus greaterThan, greaterThanOrEqual, lessThan, lessThanOrEqual
//   - StringFilter: Filter plus case-insensitive contains and doesNotContain
//
// Filters are compiled against a Path (zero to six Reference hops followed by a field name)
// with a PredicateFactory, which is implemented by the entity store, e.g. postgresengine.Factory.
// Every hop is an inner join: a root entity without a referenced entity never matches.
//
// The Build* functions reconcile caller supplied filters with authorization-derived
// allowed values. Their errors are client errors, see IsClientError.
//
// Common usage pattern:
//
//	titlePath := queryfilter.MustPath("title")
//	publisherPath := queryfilter.MustPath("name", queryfilter.Ref("author"), queryfilter.Ref("publisher"))
//
//	title, err := queryfilter.ParseStringFilter(r.URL.Query(), "title")
//	if err != nil {
//		// handle error, queryfilter.IsClientError(err) is true
//	}
//
//	publisher, err := queryfilter.BuildInOrThrow(criteria.Publisher, allowedPublishers, false)
//	if err != nil {
//		// handle error, queryfilter.IsForbidden(err) is true for values outside allowedPublishers
//	}
//
//	pf := postgresengine.NewFactory("books")
//	where := queryfilter.Conjunction[postgresengine.Predicate]{}.
//		Add(queryfilter.CompileString(pf, title, titlePath)).
//		Add(queryfilter.CompileFilter(pf, publisher, publisherPath)).
//		Predicate(pf)
package queryfilter
