package queryfilter

import (
	"errors"
)

// MaxPathLength is the maximum number of steps (reference hops plus the terminal field) a Path may have.
const MaxPathLength = 7

var (
	// ErrEmptyConstraint is returned when an "in"/allowed-value list is empty where a non-empty one is required.
	ErrEmptyConstraint = errors.New("constraint value list must not be empty")

	// ErrEmptyResult is returned when a constructed "in" filter ended up empty.
	ErrEmptyResult = errors.New("constructed in-list is empty")

	// ErrUnauthorized is returned when an equals/in value or a range bound conflicts with the allowed values.
	ErrUnauthorized = errors.New("filter value is not within the allowed values")

	// ErrContradiction is returned when an already set field would be set to a different value without replacement.
	ErrContradiction = errors.New("filter field is already set to a different value")

	// ErrInvalidArgument is returned when a mandatory value is missing or malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyPath is returned when a Path has no terminal field.
	ErrEmptyPath = errors.New("path must end in a field name")

	// ErrPathTooLong is returned when a Path exceeds MaxPathLength steps.
	ErrPathTooLong = errors.New("path exceeds the maximum number of steps")

	// ErrEmptyReferenceName is returned when a Reference in a Path has no name.
	ErrEmptyReferenceName = errors.New("reference name must not be empty")
)

// IsClientError reports whether err stems from malformed or unauthorized caller input.
// Callers at the API boundary typically translate these into 4xx responses.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyConstraint) ||
		errors.Is(err, ErrEmptyResult) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrContradiction) ||
		errors.Is(err, ErrInvalidArgument)
}

// IsForbidden reports whether err is an authorization conflict (ErrUnauthorized).
func IsForbidden(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
