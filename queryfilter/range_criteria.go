package queryfilter

import (
	"cmp"
	"errors"
	"fmt"
)

// CompareFunc orders two values like cmp.Compare.
type CompareFunc[T any] func(a, b T) int

// boundKind tells which direction makes a range bound stricter.
type boundKind int

const (
	lowerBound boundKind = iota // a larger value is stricter
	upperBound                  // a smaller value is stricter
)

type rangeBound[T comparable] struct {
	field string
	kind  boundKind
	get   func(RangeFilter[T]) (T, bool)
	set   func(RangeFilter[T], T) RangeFilter[T]
}

func greaterThanBound[T comparable]() rangeBound[T] {
	return rangeBound[T]{fieldGreaterThan, lowerBound, RangeFilter[T].GreaterThan, RangeFilter[T].WithGreaterThan}
}

func greaterThanOrEqualBound[T comparable]() rangeBound[T] {
	return rangeBound[T]{fieldGreaterThanOrEqual, lowerBound, RangeFilter[T].GreaterThanOrEqual, RangeFilter[T].WithGreaterThanOrEqual}
}

func lessThanBound[T comparable]() rangeBound[T] {
	return rangeBound[T]{fieldLessThan, upperBound, RangeFilter[T].LessThan, RangeFilter[T].WithLessThan}
}

func lessThanOrEqualBound[T comparable]() rangeBound[T] {
	return rangeBound[T]{fieldLessThanOrEqual, upperBound, RangeFilter[T].LessThanOrEqual, RangeFilter[T].WithLessThanOrEqual}
}

// isStricter reports whether candidate is a strictly tighter bound than current.
func (b rangeBound[T]) isStricter(compare CompareFunc[T], candidate, current T) bool {
	if b.kind == lowerBound {
		return compare(candidate, current) > 0
	}

	return compare(candidate, current) < 0
}

func (b rangeBound[T]) build(existing RangeFilter[T], value T, replace bool) (RangeFilter[T], error) {
	return setScalar(
		existing,
		b.field,
		func() (T, bool) { return b.get(existing) },
		func(v T) RangeFilter[T] { return b.set(existing, v) },
		value,
		replace,
	)
}

// orThrow keeps an existing bound that is at least as strict as value, sets value if there is none,
// and fails with ErrUnauthorized if the existing bound is looser than value.
func (b rangeBound[T]) orThrow(existing RangeFilter[T], value T, compare CompareFunc[T]) (RangeFilter[T], error) {
	current, ok := b.get(existing)
	if !ok {
		return b.set(existing, value), nil
	}

	if b.isStricter(compare, value, current) {
		return RangeFilter[T]{}, errors.Join(
			ErrUnauthorized,
			fmt.Errorf("%s=%v exceeds the allowed bound %v", b.field, current, value),
		)
	}

	return existing, nil
}

// tighten keeps the stricter of the existing bound and value. It never fails.
func (b rangeBound[T]) tighten(existing RangeFilter[T], value T, compare CompareFunc[T]) RangeFilter[T] {
	current, ok := b.get(existing)
	if ok && !b.isStricter(compare, value, current) {
		return existing
	}

	return b.set(existing, value)
}

/***** greaterThan *****/

// BuildGreaterThan sets greaterThan; a different existing value is replaced if replace is true, else ErrContradiction.
func BuildGreaterThan[T comparable](existing RangeFilter[T], value T, replace bool) (RangeFilter[T], error) {
	return greaterThanBound[T]().build(existing, value, replace)
}

// BuildGreaterThanOrThrow requires an existing greaterThan to be at least value, else ErrUnauthorized.
func BuildGreaterThanOrThrow[T cmp.Ordered](existing RangeFilter[T], value T) (RangeFilter[T], error) {
	return greaterThanBound[T]().orThrow(existing, value, cmp.Compare[T])
}

// BuildGreaterThanOrThrowFunc is BuildGreaterThanOrThrow with an explicit ordering.
func BuildGreaterThanOrThrowFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) (RangeFilter[T], error) {
	return greaterThanBound[T]().orThrow(existing, value, compare)
}

// BuildGreaterThanOrMore raises greaterThan to value if it is unset or lower. It only ever raises the floor.
func BuildGreaterThanOrMore[T cmp.Ordered](existing RangeFilter[T], value T) RangeFilter[T] {
	return greaterThanBound[T]().tighten(existing, value, cmp.Compare[T])
}

// BuildGreaterThanOrMoreFunc is BuildGreaterThanOrMore with an explicit ordering.
func BuildGreaterThanOrMoreFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) RangeFilter[T] {
	return greaterThanBound[T]().tighten(existing, value, compare)
}

/***** greaterThanOrEqual *****/

// BuildGreaterThanOrEqual sets greaterThanOrEqual with the same conflict rules as BuildGreaterThan.
func BuildGreaterThanOrEqual[T comparable](existing RangeFilter[T], value T, replace bool) (RangeFilter[T], error) {
	return greaterThanOrEqualBound[T]().build(existing, value, replace)
}

// BuildGreaterThanOrEqualOrThrow requires an existing greaterThanOrEqual to be at least value, else ErrUnauthorized.
func BuildGreaterThanOrEqualOrThrow[T cmp.Ordered](existing RangeFilter[T], value T) (RangeFilter[T], error) {
	return greaterThanOrEqualBound[T]().orThrow(existing, value, cmp.Compare[T])
}

func BuildGreaterThanOrEqualOrThrowFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) (RangeFilter[T], error) {
	return greaterThanOrEqualBound[T]().orThrow(existing, value, compare)
}

// BuildGreaterThanOrEqualOrMore raises greaterThanOrEqual to value if it is unset or lower.
func BuildGreaterThanOrEqualOrMore[T cmp.Ordered](existing RangeFilter[T], value T) RangeFilter[T] {
	return greaterThanOrEqualBound[T]().tighten(existing, value, cmp.Compare[T])
}

func BuildGreaterThanOrEqualOrMoreFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) RangeFilter[T] {
	return greaterThanOrEqualBound[T]().tighten(existing, value, compare)
}

/***** lessThan *****/

// BuildLessThan sets lessThan; a different existing value is replaced if replace is true, else ErrContradiction.
func BuildLessThan[T comparable](existing RangeFilter[T], value T, replace bool) (RangeFilter[T], error) {
	return lessThanBound[T]().build(existing, value, replace)
}

// BuildLessThanOrThrow requires an existing lessThan to be at most value, else ErrUnauthorized.
func BuildLessThanOrThrow[T cmp.Ordered](existing RangeFilter[T], value T) (RangeFilter[T], error) {
	return lessThanBound[T]().orThrow(existing, value, cmp.Compare[T])
}

func BuildLessThanOrThrowFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) (RangeFilter[T], error) {
	return lessThanBound[T]().orThrow(existing, value, compare)
}

// BuildLessThanOrLess lowers lessThan to value if it is unset or higher. It only ever lowers the ceiling.
func BuildLessThanOrLess[T cmp.Ordered](existing RangeFilter[T], value T) RangeFilter[T] {
	return lessThanBound[T]().tighten(existing, value, cmp.Compare[T])
}

func BuildLessThanOrLessFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) RangeFilter[T] {
	return lessThanBound[T]().tighten(existing, value, compare)
}

/***** lessThanOrEqual *****/

// BuildLessThanOrEqual sets lessThanOrEqual with the same conflict rules as BuildLessThan.
func BuildLessThanOrEqual[T comparable](existing RangeFilter[T], value T, replace bool) (RangeFilter[T], error) {
	return lessThanOrEqualBound[T]().build(existing, value, replace)
}

// BuildLessThanOrEqualOrThrow requires an existing lessThanOrEqual to be at most value, else ErrUnauthorized.
func BuildLessThanOrEqualOrThrow[T cmp.Ordered](existing RangeFilter[T], value T) (RangeFilter[T], error) {
	return lessThanOrEqualBound[T]().orThrow(existing, value, cmp.Compare[T])
}

func BuildLessThanOrEqualOrThrowFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) (RangeFilter[T], error) {
	return lessThanOrEqualBound[T]().orThrow(existing, value, compare)
}

// BuildLessThanOrEqualOrLess lowers lessThanOrEqual to value if it is unset or higher.
func BuildLessThanOrEqualOrLess[T cmp.Ordered](existing RangeFilter[T], value T) RangeFilter[T] {
	return lessThanOrEqualBound[T]().tighten(existing, value, cmp.Compare[T])
}

func BuildLessThanOrEqualOrLessFunc[T comparable](existing RangeFilter[T], value T, compare CompareFunc[T]) RangeFilter[T] {
	return lessThanOrEqualBound[T]().tighten(existing, value, compare)
}
