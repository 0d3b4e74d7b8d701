package queryfilter

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	paramOperatorSeparator = "."
	paramListSeparator     = ","
)

// ValueParser converts one raw request parameter value into a filter value.
type ValueParser[T any] func(raw string) (T, error)

// ParseFilter reads the Filter for field from request parameters of the form
// "<field>.<operator>=<value>", e.g. "status.in=ACTIVE,PENDING&status.specified=true".
//
// List operators take comma-delimited values and may be repeated, the values are concatenated.
// Every malformed operator is reported, all errors are joined with ErrInvalidArgument.
func ParseFilter[T comparable](values url.Values, field string, parse ValueParser[T]) (Filter[T], error) {
	p := paramReader[T]{values: values, field: field, parse: parse}

	filter := p.filter()
	if err := p.err(); err != nil {
		return Filter[T]{}, err
	}

	return filter, nil
}

// ParseRangeFilter reads the RangeFilter for field, see ParseFilter. It additionally reads
// greaterThan, greaterThanOrEqual, lessThan and lessThanOrEqual.
func ParseRangeFilter[T comparable](values url.Values, field string, parse ValueParser[T]) (RangeFilter[T], error) {
	p := paramReader[T]{values: values, field: field, parse: parse}

	filter := RangeFilter[T]{
		Filter:             p.filter(),
		greaterThan:        p.scalar(fieldGreaterThan),
		greaterThanOrEqual: p.scalar(fieldGreaterThanOrEqual),
		lessThan:           p.scalar(fieldLessThan),
		lessThanOrEqual:    p.scalar(fieldLessThanOrEqual),
	}

	if err := p.err(); err != nil {
		return RangeFilter[T]{}, err
	}

	return filter, nil
}

// ParseStringFilter reads the StringFilter for field, see ParseFilter. It additionally reads
// contains and doesNotContain, which must not be empty.
func ParseStringFilter(values url.Values, field string) (StringFilter, error) {
	p := paramReader[string]{values: values, field: field, parse: ParseString}

	filter := StringFilter{
		Filter:         p.filter(),
		contains:       p.nonEmpty(fieldContains),
		doesNotContain: p.nonEmpty(fieldDoesNotContain),
	}

	if err := p.err(); err != nil {
		return StringFilter{}, err
	}

	return filter, nil
}

type paramReader[T comparable] struct {
	values url.Values
	field  string
	parse  ValueParser[T]
	errs   []error
}

func (p *paramReader[T]) filter() Filter[T] {
	return Filter[T]{
		equals:    p.scalar(fieldEquals),
		notEquals: p.scalar(fieldNotEquals),
		specified: p.specified(),
		in:        p.list(fieldIn),
		notIn:     p.list(fieldNotIn),
	}
}

func (p *paramReader[T]) key(operator string) string {
	return p.field + paramOperatorSeparator + operator
}

func (p *paramReader[T]) raw(operator string) (string, bool) {
	raw, ok := p.values[p.key(operator)]
	if !ok || len(raw) == 0 {
		return "", false
	}

	return raw[len(raw)-1], true
}

func (p *paramReader[T]) scalar(operator string) *T {
	raw, ok := p.raw(operator)
	if !ok {
		return nil
	}

	value, err := p.parse(strings.TrimSpace(raw))
	if err != nil {
		p.fail(operator, err)
		return nil
	}

	return &value
}

func (p *paramReader[T]) nonEmpty(operator string) *T {
	raw, ok := p.raw(operator)
	if ok && strings.TrimSpace(raw) == "" {
		p.fail(operator, errors.New("value must not be empty"))
		return nil
	}

	return p.scalar(operator)
}

func (p *paramReader[T]) specified() *bool {
	raw, ok := p.raw(fieldSpecified)
	if !ok {
		return nil
	}

	specified, err := ParseBool(strings.TrimSpace(raw))
	if err != nil {
		p.fail(fieldSpecified, err)
		return nil
	}

	return &specified
}

func (p *paramReader[T]) list(operator string) []T {
	raws, ok := p.values[p.key(operator)]
	if !ok {
		return nil
	}

	var values []T

	for _, raw := range raws {
		for _, item := range strings.Split(raw, paramListSeparator) {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}

			value, err := p.parse(item)
			if err != nil {
				p.fail(operator, err)
				return nil
			}

			values = append(values, value)
		}
	}

	if len(values) == 0 {
		p.fail(operator, errors.New("at least one value is required"))
		return nil
	}

	return values
}

func (p *paramReader[T]) fail(operator string, err error) {
	p.errs = append(p.errs, fmt.Errorf("%s: %w", p.key(operator), err))
}

func (p *paramReader[T]) err() error {
	if len(p.errs) == 0 {
		return nil
	}

	return errors.Join(append([]error{ErrInvalidArgument}, p.errs...)...)
}

/***** value parsers *****/

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type float interface {
	~float32 | ~float64
}

// ParseString returns raw unchanged.
func ParseString(raw string) (string, error) {
	return raw, nil
}

// ParseBool accepts the values of strconv.ParseBool.
func ParseBool(raw string) (bool, error) {
	return strconv.ParseBool(raw)
}

// ParseInt parses a base-10 integer and rejects values that do not fit into T.
func ParseInt[T signed](raw string) (T, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	value := T(n)
	if int64(value) != n {
		return 0, fmt.Errorf("%s is out of range", raw)
	}

	return value, nil
}

// ParseFloat parses a decimal floating point number and rejects values that do not fit into T.
func ParseFloat[T float](raw string) (T, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}

	value := T(f)
	if math.IsInf(float64(value), 0) && !math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s is out of range", raw)
	}

	return value, nil
}

// ParseUUID parses a UUID in any of the forms accepted by uuid.Parse.
func ParseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// ParseTime parses an RFC 3339 timestamp, e.g. "2025-03-01T10:00:00Z".
func ParseTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}

// ParseDuration parses a duration like "1h30m", see time.ParseDuration.
func ParseDuration(raw string) (time.Duration, error) {
	return time.ParseDuration(raw)
}
