package queryfilter

import (
	"slices"
)

/***** Filter *****/

// Filter expresses one optional constraint on one scalar field.
//
// The zero value is an empty filter. All setters have value receivers and return a new Filter,
// the receiver is never mutated. List setters store a copy of their input.
//
// A Filter is plain data without internal synchronization: one filter value per request is the
// expected usage, sharing one across goroutines is the caller's responsibility.
type Filter[T comparable] struct {
	equals    *T
	notEquals *T
	in        []T
	notIn     []T
	specified *bool
}

// NewFilter returns an empty Filter.
func NewFilter[T comparable]() Filter[T] {
	return Filter[T]{}
}

// Equals returns the equals value and whether it is set.
func (f Filter[T]) Equals() (T, bool) {
	return valueOf(f.equals)
}

// NotEquals returns the notEquals value and whether it is set.
func (f Filter[T]) NotEquals() (T, bool) {
	return valueOf(f.notEquals)
}

// In returns a copy of the in-list, nil if it is not set.
func (f Filter[T]) In() []T {
	return cloneValues(f.in)
}

// NotIn returns a copy of the notIn-list, nil if it is not set.
func (f Filter[T]) NotIn() []T {
	return cloneValues(f.notIn)
}

// Specified returns the specified flag and whether it is set.
// true means the field must be non-null, false means it must be null.
func (f Filter[T]) Specified() (bool, bool) {
	return valueOf(f.specified)
}

// WithEquals sets the equals value.
func (f Filter[T]) WithEquals(value T) Filter[T] {
	f.equals = &value

	return f
}

// WithoutEquals clears the equals value.
func (f Filter[T]) WithoutEquals() Filter[T] {
	f.equals = nil

	return f
}

// WithNotEquals sets the notEquals value.
func (f Filter[T]) WithNotEquals(value T) Filter[T] {
	f.notEquals = &value

	return f
}

// WithoutNotEquals clears the notEquals value.
func (f Filter[T]) WithoutNotEquals() Filter[T] {
	f.notEquals = nil

	return f
}

// WithIn sets the in-list. A nil or empty list clears it.
func (f Filter[T]) WithIn(values []T) Filter[T] {
	f.in = listOrNil(values)

	return f
}

// WithoutIn clears the in-list.
func (f Filter[T]) WithoutIn() Filter[T] {
	f.in = nil

	return f
}

// WithNotIn sets the notIn-list. A nil or empty list clears it.
func (f Filter[T]) WithNotIn(values []T) Filter[T] {
	f.notIn = listOrNil(values)

	return f
}

// WithoutNotIn clears the notIn-list.
func (f Filter[T]) WithoutNotIn() Filter[T] {
	f.notIn = nil

	return f
}

// WithSpecified sets the specified flag.
func (f Filter[T]) WithSpecified(specified bool) Filter[T] {
	f.specified = &specified

	return f
}

// WithoutSpecified clears the specified flag.
func (f Filter[T]) WithoutSpecified() Filter[T] {
	f.specified = nil

	return f
}

// IsEmpty reports whether no field is set.
func (f Filter[T]) IsEmpty() bool {
	return f.equals == nil && f.notEquals == nil && f.in == nil && f.notIn == nil && f.specified == nil
}

// Copy returns a deep, independent clone.
func (f Filter[T]) Copy() Filter[T] {
	return Filter[T]{
		equals:    clonePointer(f.equals),
		notEquals: clonePointer(f.notEquals),
		in:        cloneValues(f.in),
		notIn:     cloneValues(f.notIn),
		specified: clonePointer(f.specified),
	}
}

// Equal reports whether both filters have the same fields set to the same values.
// Values are compared with their own Equal method if they have one.
func (f Filter[T]) Equal(other Filter[T]) bool {
	return pointersEqual(f.equals, other.equals) &&
		pointersEqual(f.notEquals, other.notEquals) &&
		listsEqual(f.in, other.in) &&
		listsEqual(f.notIn, other.notIn) &&
		pointersEqual(f.specified, other.specified)
}

// HasOverlap reports whether a dominant field makes a dominated one meaningless,
// under the precedence equals > in > specified.
func (f Filter[T]) HasOverlap() bool {
	if f.equals != nil && (f.in != nil || f.specified != nil) {
		return true
	}

	return f.in != nil && f.specified != nil
}

// String enumerates the populated fields: equals, notEquals, specified, in, notIn.
func (f Filter[T]) String() string {
	return formatFilter("Filter", f.fields())
}

func (f Filter[T]) fields() []string {
	fields := make([]string, 0, 5)
	fields = appendPointerField(fields, fieldEquals, f.equals)
	fields = appendPointerField(fields, fieldNotEquals, f.notEquals)
	fields = appendPointerField(fields, fieldSpecified, f.specified)
	fields = appendListField(fields, fieldIn, f.in)
	fields = appendListField(fields, fieldNotIn, f.notIn)

	return fields
}

/***** helpers shared by all filter kinds *****/

func valueOf[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}

	return *p, true
}

func clonePointer[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func cloneValues[T any](values []T) []T {
	if values == nil {
		return nil
	}

	return append(make([]T, 0, len(values)), values...)
}

// listOrNil copies values, an empty list is stored as unset.
func listOrNil[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}

	return cloneValues(values)
}

func pointersEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return valuesEqual(*a, *b)
}

func listsEqual[T comparable](a, b []T) bool {
	if (a == nil) != (b == nil) {
		return false
	}

	return slices.EqualFunc(a, b, valuesEqual[T])
}

// valuesEqual compares with the type's own Equal method if it has one, e.g. time.Time,
// so that equal instants with a different location or monotonic reading are equal.
func valuesEqual[T comparable](a, b T) bool {
	if e, ok := any(a).(interface{ Equal(T) bool }); ok {
		return e.Equal(b)
	}

	return a == b
}

func containsValue[T comparable](values []T, value T) bool {
	return slices.ContainsFunc(values, func(v T) bool { return valuesEqual(v, value) })
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
