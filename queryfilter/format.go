package queryfilter

import (
	"fmt"
	"strings"
)

// Field names as used by String(), the JSON codec and the request parameter syntax ("title.contains=abc").
const (
	fieldEquals             = "equals"
	fieldNotEquals          = "notEquals"
	fieldSpecified          = "specified"
	fieldIn                 = "in"
	fieldNotIn              = "notIn"
	fieldContains           = "contains"
	fieldDoesNotContain     = "doesNotContain"
	fieldGreaterThan        = "greaterThan"
	fieldLessThan           = "lessThan"
	fieldGreaterThanOrEqual = "greaterThanOrEqual"
	fieldLessThanOrEqual    = "lessThanOrEqual"
)

func formatFilter(name string, fields []string) string {
	return name + " [" + strings.Join(fields, ", ") + "]"
}

func appendPointerField[T any](fields []string, name string, p *T) []string {
	if p == nil {
		return fields
	}

	return append(fields, fmt.Sprintf("%s=%v", name, *p))
}

func appendListField[T any](fields []string, name string, values []T) []string {
	if values == nil {
		return fields
	}

	items := make([]string, len(values))
	for i, v := range values {
		items[i] = fmt.Sprint(v)
	}

	return append(fields, name+"=["+strings.Join(items, ", ")+"]")
}
