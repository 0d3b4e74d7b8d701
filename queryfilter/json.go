package queryfilter

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// The JSON representation uses the request parameter field names and omits unset fields:
//
//	{"equals":"a","in":["b","c"],"specified":true}
//
// An empty in/notIn list is written as absent.

type filterJSON[T any] struct {
	Equals    *T    `json:"equals,omitempty"`
	NotEquals *T    `json:"notEquals,omitempty"`
	Specified *bool `json:"specified,omitempty"`
	In        []T   `json:"in,omitempty"`
	NotIn     []T   `json:"notIn,omitempty"`
}

type rangeFilterJSON[T any] struct {
	Equals             *T    `json:"equals,omitempty"`
	NotEquals          *T    `json:"notEquals,omitempty"`
	Specified          *bool `json:"specified,omitempty"`
	In                 []T   `json:"in,omitempty"`
	NotIn              []T   `json:"notIn,omitempty"`
	GreaterThan        *T    `json:"greaterThan,omitempty"`
	LessThan           *T    `json:"lessThan,omitempty"`
	GreaterThanOrEqual *T    `json:"greaterThanOrEqual,omitempty"`
	LessThanOrEqual    *T    `json:"lessThanOrEqual,omitempty"`
}

type stringFilterJSON struct {
	Equals         *string  `json:"equals,omitempty"`
	NotEquals      *string  `json:"notEquals,omitempty"`
	Specified      *bool    `json:"specified,omitempty"`
	In             []string `json:"in,omitempty"`
	NotIn          []string `json:"notIn,omitempty"`
	Contains       *string  `json:"contains,omitempty"`
	DoesNotContain *string  `json:"doesNotContain,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (f Filter[T]) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(filterJSON[T]{
		Equals:    f.equals,
		NotEquals: f.notEquals,
		Specified: f.specified,
		In:        f.in,
		NotIn:     f.notIn,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Filter[T]) UnmarshalJSON(data []byte) error {
	var w filterJSON[T]
	if err := jsonAPI.Unmarshal(data, &w); err != nil {
		return err
	}

	*f = Filter[T]{
		equals:    w.Equals,
		notEquals: w.NotEquals,
		specified: w.Specified,
		in:        listOrNil(w.In),
		notIn:     listOrNil(w.NotIn),
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (f RangeFilter[T]) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(rangeFilterJSON[T]{
		Equals:             f.equals,
		NotEquals:          f.notEquals,
		Specified:          f.specified,
		In:                 f.in,
		NotIn:              f.notIn,
		GreaterThan:        f.greaterThan,
		LessThan:           f.lessThan,
		GreaterThanOrEqual: f.greaterThanOrEqual,
		LessThanOrEqual:    f.lessThanOrEqual,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *RangeFilter[T]) UnmarshalJSON(data []byte) error {
	var w rangeFilterJSON[T]
	if err := jsonAPI.Unmarshal(data, &w); err != nil {
		return err
	}

	*f = RangeFilter[T]{
		Filter: Filter[T]{
			equals:    w.Equals,
			notEquals: w.NotEquals,
			specified: w.Specified,
			in:        listOrNil(w.In),
			notIn:     listOrNil(w.NotIn),
		},
		greaterThan:        w.GreaterThan,
		lessThan:           w.LessThan,
		greaterThanOrEqual: w.GreaterThanOrEqual,
		lessThanOrEqual:    w.LessThanOrEqual,
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (f StringFilter) MarshalJSON() ([]byte, error) {
	return jsonAPI.Marshal(stringFilterJSON{
		Equals:         f.equals,
		NotEquals:      f.notEquals,
		Specified:      f.specified,
		In:             f.in,
		NotIn:          f.notIn,
		Contains:       f.contains,
		DoesNotContain: f.doesNotContain,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *StringFilter) UnmarshalJSON(data []byte) error {
	var w stringFilterJSON
	if err := jsonAPI.Unmarshal(data, &w); err != nil {
		return err
	}

	*f = StringFilter{
		Filter: Filter[string]{
			equals:    w.Equals,
			notEquals: w.NotEquals,
			specified: w.Specified,
			in:        listOrNil(w.In),
			notIn:     listOrNil(w.NotIn),
		},
		contains:       w.Contains,
		doesNotContain: w.DoesNotContain,
	}

	return nil
}
