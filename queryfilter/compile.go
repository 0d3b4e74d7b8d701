package queryfilter

import (
	"strings"
)

const likeWildcard = "%"

// Conjoiner combines predicates with AND.
type Conjoiner[P any] interface {
	// And returns the conjunction of the given predicates.
	And(predicates ...P) P

	// True returns the neutral element of And.
	True() P
}

// PredicateFactory is the capability an entity store must offer so that filters can be compiled for it.
//
// A is the store's resolved attribute (a navigable reference chain ending in a scalar field),
// P is its predicate type. Implementations must be pure: the compiler never executes anything.
type PredicateFactory[A, P any] interface {
	Conjoiner[P]

	// Resolve turns a Path into an attribute. Every reference hop has inner-join semantics.
	Resolve(path Path) A

	Equal(attribute A, value any) P
	NotEqual(attribute A, value any) P
	In(attribute A, values []any) P
	Not(predicate P) P
	IsNull(attribute A) P
	IsNotNull(attribute A) P
	GreaterThan(attribute A, value any) P
	GreaterThanOrEqual(attribute A, value any) P
	LessThan(attribute A, value any) P
	LessThanOrEqual(attribute A, value any) P

	// UpperLike matches the upper-cased attribute against a LIKE pattern that is already upper-cased.
	UpperLike(attribute A, pattern string) P
}

// CompileFilter translates a Filter into a predicate on the field located by path.
//
// equals wins over in, and either one short-circuits everything else. Otherwise notEquals, notIn and
// specified are combined with AND. The second return value is false if no field is set.
func CompileFilter[T comparable, A, P any](pf PredicateFactory[A, P], filter Filter[T], path Path) (P, bool) {
	if filter.IsEmpty() {
		var none P
		return none, false
	}

	attribute := pf.Resolve(path)

	if p, matched := compileExclusive(pf, attribute, filter); matched {
		return p, true
	}

	return conjoin[P](pf, compileInclusive(pf, attribute, filter))
}

// CompileString translates a StringFilter like CompileFilter, additionally combining
// contains and doesNotContain as case-insensitive substring predicates.
func CompileString[A, P any](pf PredicateFactory[A, P], filter StringFilter, path Path) (P, bool) {
	if filter.IsEmpty() {
		var none P
		return none, false
	}

	attribute := pf.Resolve(path)

	if p, matched := compileExclusive(pf, attribute, filter.Filter); matched {
		return p, true
	}

	predicates := make([]P, 0, 5)

	if contains, ok := filter.Contains(); ok {
		predicates = append(predicates, pf.UpperLike(attribute, wrapLikePattern(contains)))
	}

	if doesNotContain, ok := filter.DoesNotContain(); ok {
		predicates = append(predicates, pf.Not(pf.UpperLike(attribute, wrapLikePattern(doesNotContain))))
	}

	predicates = append(predicates, compileInclusive(pf, attribute, filter.Filter)...)

	return conjoin[P](pf, predicates)
}

// CompileRange translates a RangeFilter like CompileFilter, additionally combining the four range bounds.
// It never returns "no predicate": an empty filter compiles to pf.True().
func CompileRange[T comparable, A, P any](pf PredicateFactory[A, P], filter RangeFilter[T], path Path) P {
	if filter.IsEmpty() {
		return pf.True()
	}

	attribute := pf.Resolve(path)

	if p, matched := compileExclusive(pf, attribute, filter.Filter); matched {
		return p
	}

	predicates := compileInclusive(pf, attribute, filter.Filter)

	if v, ok := filter.GreaterThan(); ok {
		predicates = append(predicates, pf.GreaterThan(attribute, v))
	}

	if v, ok := filter.GreaterThanOrEqual(); ok {
		predicates = append(predicates, pf.GreaterThanOrEqual(attribute, v))
	}

	if v, ok := filter.LessThan(); ok {
		predicates = append(predicates, pf.LessThan(attribute, v))
	}

	if v, ok := filter.LessThanOrEqual(); ok {
		predicates = append(predicates, pf.LessThanOrEqual(attribute, v))
	}

	if p, ok := conjoin[P](pf, predicates); ok {
		return p
	}

	return pf.True()
}

func compileExclusive[T comparable, A, P any](pf PredicateFactory[A, P], attribute A, filter Filter[T]) (P, bool) {
	if v, ok := filter.Equals(); ok {
		return pf.Equal(attribute, v), true
	}

	if filter.in != nil {
		return pf.In(attribute, toAny(filter.in)), true
	}

	var none P

	return none, false
}

func compileInclusive[T comparable, A, P any](pf PredicateFactory[A, P], attribute A, filter Filter[T]) []P {
	predicates := make([]P, 0, 3)

	if v, ok := filter.NotEquals(); ok {
		predicates = append(predicates, pf.NotEqual(attribute, v))
	}

	if filter.notIn != nil {
		predicates = append(predicates, pf.Not(pf.In(attribute, toAny(filter.notIn))))
	}

	if specified, ok := filter.Specified(); ok {
		if specified {
			predicates = append(predicates, pf.IsNotNull(attribute))
		} else {
			predicates = append(predicates, pf.IsNull(attribute))
		}
	}

	return predicates
}

func conjoin[P any](c Conjoiner[P], predicates []P) (P, bool) {
	switch len(predicates) {
	case 0:
		var none P
		return none, false

	case 1:
		return predicates[0], true

	default:
		return c.And(predicates...), true
	}
}

func wrapLikePattern(value string) string {
	return likeWildcard + strings.ToUpper(value) + likeWildcard
}

/***** Conjunction *****/

// Conjunction accumulates optional compiled predicates for AND-folding:
//
//	where := queryfilter.Conjunction[postgresengine.Predicate]{}.
//		Add(queryfilter.CompileString(pf, criteria.Title, titlePath)).
//		With(queryfilter.CompileRange(pf, criteria.Price, pricePath))
//	predicate := where.Predicate(pf)
type Conjunction[P any] struct {
	predicates []P
}

// Add appends p if ok is true, so it can directly take the results of CompileFilter and CompileString.
func (c Conjunction[P]) Add(p P, ok bool) Conjunction[P] {
	if !ok {
		return c
	}

	return c.With(p)
}

// With appends p.
func (c Conjunction[P]) With(p P) Conjunction[P] {
	c.predicates = append(cloneValues(c.predicates), p)

	return c
}

// Len returns the number of accumulated predicates.
func (c Conjunction[P]) Len() int {
	return len(c.predicates)
}

// Predicate folds the accumulated predicates with AND, returning the neutral element if there are none.
func (c Conjunction[P]) Predicate(conjoiner Conjoiner[P]) P {
	if p, ok := conjoin[P](conjoiner, c.predicates); ok {
		return p
	}

	return conjoiner.True()
}
