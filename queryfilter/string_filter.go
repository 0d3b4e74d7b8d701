package queryfilter

/***** StringFilter *****/

// StringFilter is a Filter[string] with case-insensitive substring containment and exclusion.
type StringFilter struct {
	Filter[string]
	contains       *string
	doesNotContain *string
}

// NewStringFilter returns an empty StringFilter.
func NewStringFilter() StringFilter {
	return StringFilter{}
}

// Contains returns the contains value and whether it is set.
func (f StringFilter) Contains() (string, bool) {
	return valueOf(f.contains)
}

// DoesNotContain returns the doesNotContain value and whether it is set.
func (f StringFilter) DoesNotContain() (string, bool) {
	return valueOf(f.doesNotContain)
}

func (f StringFilter) WithContains(value string) StringFilter {
	f.contains = &value

	return f
}

func (f StringFilter) WithoutContains() StringFilter {
	f.contains = nil

	return f
}

func (f StringFilter) WithDoesNotContain(value string) StringFilter {
	f.doesNotContain = &value

	return f
}

func (f StringFilter) WithoutDoesNotContain() StringFilter {
	f.doesNotContain = nil

	return f
}

// The base setters are redeclared so chains keep the StringFilter type.

func (f StringFilter) WithEquals(value string) StringFilter {
	f.Filter = f.Filter.WithEquals(value)

	return f
}

func (f StringFilter) WithoutEquals() StringFilter {
	f.Filter = f.Filter.WithoutEquals()

	return f
}

func (f StringFilter) WithNotEquals(value string) StringFilter {
	f.Filter = f.Filter.WithNotEquals(value)

	return f
}

func (f StringFilter) WithoutNotEquals() StringFilter {
	f.Filter = f.Filter.WithoutNotEquals()

	return f
}

func (f StringFilter) WithIn(values []string) StringFilter {
	f.Filter = f.Filter.WithIn(values)

	return f
}

func (f StringFilter) WithoutIn() StringFilter {
	f.Filter = f.Filter.WithoutIn()

	return f
}

func (f StringFilter) WithNotIn(values []string) StringFilter {
	f.Filter = f.Filter.WithNotIn(values)

	return f
}

func (f StringFilter) WithoutNotIn() StringFilter {
	f.Filter = f.Filter.WithoutNotIn()

	return f
}

func (f StringFilter) WithSpecified(specified bool) StringFilter {
	f.Filter = f.Filter.WithSpecified(specified)

	return f
}

func (f StringFilter) WithoutSpecified() StringFilter {
	f.Filter = f.Filter.WithoutSpecified()

	return f
}

// IsEmpty reports whether no field is set.
func (f StringFilter) IsEmpty() bool {
	return f.Filter.IsEmpty() && f.contains == nil && f.doesNotContain == nil
}

// Copy returns a deep, independent clone.
func (f StringFilter) Copy() StringFilter {
	return StringFilter{
		Filter:         f.Filter.Copy(),
		contains:       clonePointer(f.contains),
		doesNotContain: clonePointer(f.doesNotContain),
	}
}

// Equal reports whether both filters have the same fields set to the same values.
func (f StringFilter) Equal(other StringFilter) bool {
	return f.Filter.Equal(other.Filter) &&
		pointersEqual(f.contains, other.contains) &&
		pointersEqual(f.doesNotContain, other.doesNotContain)
}

// HasOverlap reports the base overlaps plus equals or in combined with contains,
// and contains combined with specified.
func (f StringFilter) HasOverlap() bool {
	if f.Filter.HasOverlap() {
		return true
	}

	if f.contains == nil {
		return false
	}

	return f.equals != nil || f.in != nil || f.specified != nil
}

// String enumerates the populated fields: the base fields, then contains, doesNotContain.
func (f StringFilter) String() string {
	fields := f.Filter.fields()
	fields = appendPointerField(fields, fieldContains, f.contains)
	fields = appendPointerField(fields, fieldDoesNotContain, f.doesNotContain)

	return formatFilter("StringFilter", fields)
}
