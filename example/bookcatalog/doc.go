// Package bookcatalog is an example query service on top of queryfilter.
//
// BookCriteria carries one filter per queryable field of a book, including fields of the author, the author's
// publisher and the book's tags. Where folds all of them into a single predicate for any entity store,
// the QueryHandler runs it against a postgresengine.EntityStore. The same criteria evaluated with
// memengine give the reference result.
//
// Criteria arrive either as request parameters ("title.contains=design&price.lessThan=50") or as JSON
// ({"title": {"contains": "design"}, "price": {"lessThan": 50}}). The restriction functions narrow parsed
// criteria to what a caller is allowed to see before they are compiled.
package bookcatalog
