package memengine

import (
	"strings"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

const (
	rootAlias      = ""
	aliasSeparator = "."
)

var _ queryfilter.PredicateFactory[Attribute, Predicate] = Factory{}

// Entity is one stored record. Reference fields hold an Entity, a []Entity, or nil.
type Entity map[string]any

// row binds every joined alias to one entity, the root entity is bound to rootAlias.
type row map[string]Entity

type join struct {
	alias       string
	parentAlias string
	reference   queryfilter.Reference
}

// Attribute is a resolved Path: the alias of the entity holding the field and the joins leading to it.
type Attribute struct {
	alias string
	field string
	joins []join
}

func (a Attribute) value(r row) any {
	return r[a.alias][a.field]
}

// Predicate evaluates one joined row.
type Predicate struct {
	eval  func(r row) Truth
	joins []join
}

// Factory implements queryfilter.PredicateFactory for Entity values.
type Factory struct{}

// NewFactory creates a Factory.
func NewFactory() Factory {
	return Factory{}
}

// Resolve turns the path into an Attribute. Each reference is looked up by its name in the parent entity.
// Equal path prefixes bind the same alias, so predicates past a to-many hop are evaluated on one related entity.
func (Factory) Resolve(path queryfilter.Path) Attribute {
	parentAlias := rootAlias
	steps := make([]string, 0, path.Len()-1)
	joins := make([]join, 0, path.Len()-1)

	for _, reference := range path.References() {
		steps = append(steps, reference.Name())
		alias := strings.Join(steps, aliasSeparator)

		joins = append(joins, join{alias: alias, parentAlias: parentAlias, reference: reference})
		parentAlias = alias
	}

	return Attribute{alias: parentAlias, field: path.Field(), joins: joins}
}

func (Factory) Equal(attribute Attribute, value any) Predicate {
	return attribute.compare(func(actual any) Truth {
		return truthOf(equalValues(actual, value))
	})
}

func (Factory) NotEqual(attribute Attribute, value any) Predicate {
	return attribute.compare(func(actual any) Truth {
		return truthOf(!equalValues(actual, value))
	})
}

func (Factory) In(attribute Attribute, values []any) Predicate {
	return attribute.compare(func(actual any) Truth {
		for _, value := range values {
			if equalValues(actual, value) {
				return True
			}
		}

		return False
	})
}

func (Factory) Not(predicate Predicate) Predicate {
	return Predicate{
		eval:  func(r row) Truth { return predicate.eval(r).Not() },
		joins: predicate.joins,
	}
}

func (Factory) IsNull(attribute Attribute) Predicate {
	return Predicate{
		eval:  func(r row) Truth { return truthOf(attribute.value(r) == nil) },
		joins: attribute.joins,
	}
}

func (Factory) IsNotNull(attribute Attribute) Predicate {
	return Predicate{
		eval:  func(r row) Truth { return truthOf(attribute.value(r) != nil) },
		joins: attribute.joins,
	}
}

func (Factory) GreaterThan(attribute Attribute, value any) Predicate {
	return attribute.order(value, func(c int) bool { return c > 0 })
}

func (Factory) GreaterThanOrEqual(attribute Attribute, value any) Predicate {
	return attribute.order(value, func(c int) bool { return c >= 0 })
}

func (Factory) LessThan(attribute Attribute, value any) Predicate {
	return attribute.order(value, func(c int) bool { return c < 0 })
}

func (Factory) LessThanOrEqual(attribute Attribute, value any) Predicate {
	return attribute.order(value, func(c int) bool { return c <= 0 })
}

// UpperLike matches the upper-cased string value against the LIKE pattern. Non-string values never match.
func (Factory) UpperLike(attribute Attribute, pattern string) Predicate {
	return attribute.compare(func(actual any) Truth {
		s, ok := actual.(string)
		if !ok {
			return False
		}

		return truthOf(matchLike(strings.ToUpper(s), pattern))
	})
}

func (Factory) And(predicates ...Predicate) Predicate {
	var joins []join
	for _, p := range predicates {
		joins = mergeJoins(joins, p.joins)
	}

	return Predicate{
		eval: func(r row) Truth {
			result := True
			for _, p := range predicates {
				result = result.And(p.eval(r))
			}

			return result
		},
		joins: joins,
	}
}

func (Factory) True() Predicate {
	return Predicate{eval: func(row) Truth { return True }}
}

/***** evaluation *****/

// Evaluate returns the truth value of the predicate for the entity: True if any joined row satisfies it,
// otherwise Unknown if any joined row is unknown, otherwise False (also if there is no joined row at all).
func Evaluate(entity Entity, predicate Predicate) Truth {
	result := False

	for _, r := range expand(entity, predicate.joins) {
		switch predicate.eval(r) {
		case True:
			return True
		case Unknown:
			result = Unknown
		}
	}

	return result
}

// Matches reports whether the predicate is True for the entity.
func Matches(entity Entity, predicate Predicate) bool {
	return Evaluate(entity, predicate) == True
}

// Select returns the entities matching the predicate, keeping their order.
func Select(entities []Entity, predicate Predicate) []Entity {
	matching := make([]Entity, 0, len(entities))

	for _, entity := range entities {
		if Matches(entity, predicate) {
			matching = append(matching, entity)
		}
	}

	return matching
}

// Count returns the number of entities matching the predicate.
func Count(entities []Entity, predicate Predicate) int {
	return len(Select(entities, predicate))
}

// expand builds the inner join of the root entity with all joins. A join's parent alias always precedes it.
func expand(entity Entity, joins []join) []row {
	rows := []row{{rootAlias: entity}}

	for _, j := range joins {
		next := make([]row, 0, len(rows))

		for _, r := range rows {
			for _, referenced := range referencedEntities(r[j.parentAlias], j.reference.Name()) {
				joined := make(row, len(r)+1)
				for alias, e := range r {
					joined[alias] = e
				}

				joined[j.alias] = referenced
				next = append(next, joined)
			}
		}

		rows = next
	}

	return rows
}

func referencedEntities(parent Entity, name string) []Entity {
	switch referenced := parent[name].(type) {
	case Entity:
		if referenced == nil {
			return nil
		}

		return []Entity{referenced}

	case map[string]any:
		if referenced == nil {
			return nil
		}

		return []Entity{referenced}

	case []Entity:
		return referenced

	default:
		return nil
	}
}

func (a Attribute) compare(test func(actual any) Truth) Predicate {
	return Predicate{
		eval: func(r row) Truth {
			actual := a.value(r)
			if actual == nil {
				return Unknown
			}

			return test(actual)
		},
		joins: a.joins,
	}
}

func (a Attribute) order(value any, accept func(c int) bool) Predicate {
	return a.compare(func(actual any) Truth {
		c, ok := compareValues(actual, value)
		if !ok {
			return Unknown
		}

		return truthOf(accept(c))
	})
}

// mergeJoins appends the joins of b that are not yet in a, identified by alias.
func mergeJoins(a, b []join) []join {
	for _, candidate := range b {
		known := false

		for _, existing := range a {
			if existing.alias == candidate.alias {
				known = true
				break
			}
		}

		if !known {
			a = append(a, candidate)
		}
	}

	return a
}
