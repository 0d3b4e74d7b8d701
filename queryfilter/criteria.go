package queryfilter

import (
	"errors"
	"fmt"
	"slices"
)

// Criteria is the method set shared by Filter, RangeFilter and StringFilter.
// F is the concrete filter kind, so setters keep it: Filter[T] implements Criteria[T, Filter[T]].
type Criteria[T comparable, F any] interface {
	Equals() (T, bool)
	NotEquals() (T, bool)
	In() []T
	NotIn() []T
	Specified() (bool, bool)
	WithEquals(value T) F
	WithoutEquals() F
	WithNotEquals(value T) F
	WithIn(values []T) F
	WithoutIn() F
	WithNotIn(values []T) F
	WithSpecified(specified bool) F
}

var (
	_ Criteria[int, Filter[int]]      = Filter[int]{}
	_ Criteria[int, RangeFilter[int]] = RangeFilter[int]{}
	_ Criteria[string, StringFilter]  = StringFilter{}
)

// The reconciliation builders below take the existing filter by value; an absent filter is the zero value.
// On error they return the zero filter, the input is never modified.

// BuildEquals sets equals to value. An existing different equals value is replaced if replace is true,
// otherwise ErrContradiction is returned. All other fields are left untouched.
func BuildEquals[T comparable, F Criteria[T, F]](existing F, value T, replace bool) (F, error) {
	return setScalar(existing, fieldEquals, existing.Equals, existing.WithEquals, value, replace)
}

// BuildNotEquals sets notEquals to value with the same conflict rules as BuildEquals.
func BuildNotEquals[T comparable, F Criteria[T, F]](existing F, value T, replace bool) (F, error) {
	return setScalar(existing, fieldNotEquals, existing.NotEquals, existing.WithNotEquals, value, replace)
}

// BuildSpecified sets specified with the same conflict rules as BuildEquals.
func BuildSpecified[T comparable, F Criteria[T, F]](existing F, specified bool, replace bool) (F, error) {
	return setScalar(existing, fieldSpecified, existing.Specified, existing.WithSpecified, specified, replace)
}

// BuildIn replaces the in-list with values. It does not validate against an existing equals value.
func BuildIn[T comparable, F Criteria[T, F]](existing F, values []T) (F, error) {
	var zero F

	if len(values) == 0 {
		return zero, errors.Join(ErrEmptyConstraint, fmt.Errorf("%s requires at least one value", fieldIn))
	}

	result := existing.WithIn(values)

	if len(result.In()) == 0 {
		return zero, ErrEmptyResult
	}

	return result, nil
}

// BuildNotIn replaces the notIn-list with values.
func BuildNotIn[T comparable, F Criteria[T, F]](existing F, values []T) (F, error) {
	var zero F

	if len(values) == 0 {
		return zero, errors.Join(ErrEmptyConstraint, fmt.Errorf("%s requires at least one value", fieldNotIn))
	}

	return existing.WithNotIn(values), nil
}

// BuildInFiltered narrows the existing in-list to the allowed values (retain-only, keeping the existing order).
// If there is no existing in-list, or nothing of it is allowed, the in-list becomes the full allowed list.
// It never widens an in-list beyond allowed.
func BuildInFiltered[T comparable, F Criteria[T, F]](existing F, allowed []T) (F, error) {
	var zero F

	if len(allowed) == 0 {
		return zero, errors.Join(ErrEmptyConstraint, errors.New("allowed values must not be empty"))
	}

	narrowed := slices.DeleteFunc(existing.In(), func(v T) bool {
		return !containsValue(allowed, v)
	})

	if len(narrowed) == 0 {
		return BuildIn(existing, allowed)
	}

	return BuildIn(existing, narrowed)
}

// BuildInOrThrow reconciles the existing filter with the allowed values:
//   - an existing equals value must be allowed (else ErrUnauthorized), the filter is then returned unchanged
//   - every value of an existing in-list must be allowed (else ErrUnauthorized)
//   - a single allowed value then collapses into equals and the in-list is cleared, with or without replace
//   - otherwise an existing in-list is kept without replace, and replaced by allowed with replace
//
// The singleton collapse changes the filter's shape: a caller that serializes the result will see
// "equals" instead of a one-element "in".
func BuildInOrThrow[T comparable, F Criteria[T, F]](existing F, allowed []T, replace bool) (F, error) {
	var zero F

	if len(allowed) == 0 {
		return zero, errors.Join(ErrEmptyConstraint, errors.New("allowed values must not be empty"))
	}

	if equals, ok := existing.Equals(); ok {
		if !containsValue(allowed, equals) {
			return zero, errors.Join(ErrUnauthorized, fmt.Errorf("%s=%v is not allowed", fieldEquals, equals))
		}

		return existing, nil
	}

	if in := existing.In(); len(in) > 0 {
		for _, v := range in {
			if !containsValue(allowed, v) {
				return zero, errors.Join(ErrUnauthorized, fmt.Errorf("%s value %v is not allowed", fieldIn, v))
			}
		}

		if !replace && len(allowed) > 1 {
			return existing, nil
		}
	}

	if len(allowed) == 1 {
		return existing.WithoutIn().WithEquals(allowed[0]), nil
	}

	return BuildIn(existing, allowed)
}

// BuildContains sets contains with the same conflict rules as BuildEquals. An empty value is an ErrInvalidArgument.
func BuildContains(existing StringFilter, value string, replace bool) (StringFilter, error) {
	if value == "" {
		return StringFilter{}, errors.Join(ErrInvalidArgument, fmt.Errorf("%s requires a non-empty value", fieldContains))
	}

	return setScalar(existing, fieldContains, existing.Contains, existing.WithContains, value, replace)
}

// BuildDoesNotContain sets doesNotContain with the same rules as BuildContains.
func BuildDoesNotContain(existing StringFilter, value string, replace bool) (StringFilter, error) {
	if value == "" {
		return StringFilter{}, errors.Join(ErrInvalidArgument, fmt.Errorf("%s requires a non-empty value", fieldDoesNotContain))
	}

	return setScalar(existing, fieldDoesNotContain, existing.DoesNotContain, existing.WithDoesNotContain, value, replace)
}

// setScalar implements the set / keep / replace-or-contradict shape shared by all single-valued fields.
func setScalar[V comparable, F any](
	existing F,
	field string,
	get func() (V, bool),
	set func(V) F,
	value V,
	replace bool,
) (F, error) {

	current, ok := get()

	switch {
	case !ok:
		return set(value), nil

	case valuesEqual(current, value):
		return existing, nil

	case replace:
		return set(value), nil

	default:
		var zero F
		return zero, errors.Join(
			ErrContradiction,
			fmt.Errorf("%s is already set to %v, requested %v", field, current, value),
		)
	}
}
