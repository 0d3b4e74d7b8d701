package queryfilter

/***** RangeFilter *****/

// RangeFilter is a Filter with ordering comparisons.
//
// T must be totally ordered by the entity store the filter is compiled against. The
// reconciliation builders that compare bounds take cmp.Ordered values or an explicit
// compare func (e.g. time.Time.Compare).
type RangeFilter[T comparable] struct {
	Filter[T]
	greaterThan        *T
	greaterThanOrEqual *T
	lessThan           *T
	lessThanOrEqual    *T
}

// NewRangeFilter returns an empty RangeFilter.
func NewRangeFilter[T comparable]() RangeFilter[T] {
	return RangeFilter[T]{}
}

// GreaterThan returns the exclusive lower bound and whether it is set.
func (f RangeFilter[T]) GreaterThan() (T, bool) {
	return valueOf(f.greaterThan)
}

// GreaterThanOrEqual returns the inclusive lower bound and whether it is set.
func (f RangeFilter[T]) GreaterThanOrEqual() (T, bool) {
	return valueOf(f.greaterThanOrEqual)
}

// LessThan returns the exclusive upper bound and whether it is set.
func (f RangeFilter[T]) LessThan() (T, bool) {
	return valueOf(f.lessThan)
}

// LessThanOrEqual returns the inclusive upper bound and whether it is set.
func (f RangeFilter[T]) LessThanOrEqual() (T, bool) {
	return valueOf(f.lessThanOrEqual)
}

func (f RangeFilter[T]) WithGreaterThan(value T) RangeFilter[T] {
	f.greaterThan = &value

	return f
}

func (f RangeFilter[T]) WithoutGreaterThan() RangeFilter[T] {
	f.greaterThan = nil

	return f
}

func (f RangeFilter[T]) WithGreaterThanOrEqual(value T) RangeFilter[T] {
	f.greaterThanOrEqual = &value

	return f
}

func (f RangeFilter[T]) WithoutGreaterThanOrEqual() RangeFilter[T] {
	f.greaterThanOrEqual = nil

	return f
}

func (f RangeFilter[T]) WithLessThan(value T) RangeFilter[T] {
	f.lessThan = &value

	return f
}

func (f RangeFilter[T]) WithoutLessThan() RangeFilter[T] {
	f.lessThan = nil

	return f
}

func (f RangeFilter[T]) WithLessThanOrEqual(value T) RangeFilter[T] {
	f.lessThanOrEqual = &value

	return f
}

func (f RangeFilter[T]) WithoutLessThanOrEqual() RangeFilter[T] {
	f.lessThanOrEqual = nil

	return f
}

// The base setters are redeclared so chains keep the RangeFilter type.

func (f RangeFilter[T]) WithEquals(value T) RangeFilter[T] {
	f.Filter = f.Filter.WithEquals(value)

	return f
}

func (f RangeFilter[T]) WithoutEquals() RangeFilter[T] {
	f.Filter = f.Filter.WithoutEquals()

	return f
}

func (f RangeFilter[T]) WithNotEquals(value T) RangeFilter[T] {
	f.Filter = f.Filter.WithNotEquals(value)

	return f
}

func (f RangeFilter[T]) WithoutNotEquals() RangeFilter[T] {
	f.Filter = f.Filter.WithoutNotEquals()

	return f
}

func (f RangeFilter[T]) WithIn(values []T) RangeFilter[T] {
	f.Filter = f.Filter.WithIn(values)

	return f
}

func (f RangeFilter[T]) WithoutIn() RangeFilter[T] {
	f.Filter = f.Filter.WithoutIn()

	return f
}

func (f RangeFilter[T]) WithNotIn(values []T) RangeFilter[T] {
	f.Filter = f.Filter.WithNotIn(values)

	return f
}

func (f RangeFilter[T]) WithoutNotIn() RangeFilter[T] {
	f.Filter = f.Filter.WithoutNotIn()

	return f
}

func (f RangeFilter[T]) WithSpecified(specified bool) RangeFilter[T] {
	f.Filter = f.Filter.WithSpecified(specified)

	return f
}

func (f RangeFilter[T]) WithoutSpecified() RangeFilter[T] {
	f.Filter = f.Filter.WithoutSpecified()

	return f
}

// HasBounds reports whether any of the four range bounds is set.
func (f RangeFilter[T]) HasBounds() bool {
	return f.greaterThan != nil || f.greaterThanOrEqual != nil || f.lessThan != nil || f.lessThanOrEqual != nil
}

// IsEmpty reports whether no field is set.
func (f RangeFilter[T]) IsEmpty() bool {
	return f.Filter.IsEmpty() && !f.HasBounds()
}

// Copy returns a deep, independent clone.
func (f RangeFilter[T]) Copy() RangeFilter[T] {
	return RangeFilter[T]{
		Filter:             f.Filter.Copy(),
		greaterThan:        clonePointer(f.greaterThan),
		greaterThanOrEqual: clonePointer(f.greaterThanOrEqual),
		lessThan:           clonePointer(f.lessThan),
		lessThanOrEqual:    clonePointer(f.lessThanOrEqual),
	}
}

// Equal reports whether both filters have the same fields set to the same values.
func (f RangeFilter[T]) Equal(other RangeFilter[T]) bool {
	return f.Filter.Equal(other.Filter) &&
		pointersEqual(f.greaterThan, other.greaterThan) &&
		pointersEqual(f.greaterThanOrEqual, other.greaterThanOrEqual) &&
		pointersEqual(f.lessThan, other.lessThan) &&
		pointersEqual(f.lessThanOrEqual, other.lessThanOrEqual)
}

// HasOverlap reports the base overlaps plus equals or in combined with any range bound.
func (f RangeFilter[T]) HasOverlap() bool {
	if f.Filter.HasOverlap() {
		return true
	}

	return (f.equals != nil || f.in != nil) && f.HasBounds()
}

// String enumerates the populated fields: the base fields, then greaterThan, lessThan,
// greaterThanOrEqual, lessThanOrEqual.
func (f RangeFilter[T]) String() string {
	fields := f.Filter.fields()
	fields = appendPointerField(fields, fieldGreaterThan, f.greaterThan)
	fields = appendPointerField(fields, fieldLessThan, f.lessThan)
	fields = appendPointerField(fields, fieldGreaterThanOrEqual, f.greaterThanOrEqual)
	fields = appendPointerField(fields, fieldLessThanOrEqual, f.lessThanOrEqual)

	return formatFilter("RangeFilter", fields)
}
