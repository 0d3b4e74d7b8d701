// Package memengine provides an in-memory implementation of queryfilter.PredicateFactory.
//
// Entities are maps from field names to values. A reference is a field holding an Entity (to-one)
// or a []Entity (to-many). Predicates follow SQL semantics:
//   - every Reference hop of a path is an inner join, a missing or nil reference drops the row
//   - comparisons with a null (missing or nil) value are unknown, NOT of unknown is unknown
//   - a root entity matches if at least one of its joined rows satisfies the predicate
//
// It is meant for tests and small in-process data sets, not as a query engine.
package memengine
