package bookcatalog

import (
	"net/url"
)

// Query is the input of a book search.
type Query struct {
	Criteria BookCriteria
}

func BuildQuery(criteria BookCriteria) Query {
	return Query{Criteria: criteria}
}

// BuildQueryFromParams parses the criteria from request parameters.
func BuildQueryFromParams(values url.Values) (Query, error) {
	criteria, err := ParseCriteria(values)
	if err != nil {
		return Query{}, err
	}

	return BuildQuery(criteria), nil
}

// BuildQueryFromJSON decodes the criteria from a JSON document.
func BuildQueryFromJSON(data []byte) (Query, error) {
	criteria, err := DecodeCriteria(data)
	if err != nil {
		return Query{}, err
	}

	return BuildQuery(criteria), nil
}
