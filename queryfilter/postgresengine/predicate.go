package postgresengine

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

const (
	dialectPostgres = "postgres"
	aliasSeparator  = "__"
	identSeparator  = "."
	funcUpper       = "UPPER"
	literalTrue     = "TRUE"
	literalNot      = "NOT (?)"
)

var _ queryfilter.PredicateFactory[Attribute, Predicate] = Factory{}

// join is one INNER JOIN needed to reach an attribute.
type join struct {
	table  string
	alias  string
	on     exp.Expression
	toMany bool
}

// Attribute is a resolved Path: the column of the terminal field plus the joins that lead to it.
type Attribute struct {
	column exp.IdentifierExpression
	joins  []join
}

// Column returns the qualified column identifier, e.g. "author__publisher"."name".
func (a Attribute) Column() exp.IdentifierExpression {
	return a.column
}

// Predicate is a goqu boolean expression together with the joins its attributes require.
type Predicate struct {
	expression exp.Expression
	joins      []join
}

// Expression returns the goqu expression for a WHERE clause.
func (p Predicate) Expression() exp.Expression {
	return p.expression
}

// HasToManyJoin reports whether any required join follows a to-many reference,
// which means the root entity can appear more than once in the joined rows.
func (p Predicate) HasToManyJoin() bool {
	for _, j := range p.joins {
		if j.toMany {
			return true
		}
	}

	return false
}

// Factory implements queryfilter.PredicateFactory with goqu expressions for a root table.
//
// Every Reference hop becomes an INNER JOIN. The joined tables are aliased by the reference names
// of the path joined with "__", so equal path prefixes share one join. Past a to-many hop this means
// all predicates on that path must hold for the same related row.
type Factory struct {
	rootTable string
}

// NewFactory creates a Factory for entities stored in rootTable.
func NewFactory(rootTable string) Factory {
	return Factory{rootTable: rootTable}
}

// RootTable returns the table of the root entity.
func (f Factory) RootTable() string {
	return f.rootTable
}

// Resolve turns the path into a column of the last joined table.
func (f Factory) Resolve(path queryfilter.Path) Attribute {
	parentAlias := f.rootTable
	aliasSteps := make([]string, 0, path.Len()-1)
	joins := make([]join, 0, path.Len()-1)

	for _, reference := range path.References() {
		aliasSteps = append(aliasSteps, reference.Name())
		alias := strings.Join(aliasSteps, aliasSeparator)

		joins = append(joins, join{
			table: reference.Table(),
			alias: alias,
			on: goqu.I(alias + identSeparator + reference.ForeignKey()).
				Eq(goqu.I(parentAlias + identSeparator + reference.LocalKey())),
			toMany: reference.IsToMany(),
		})

		parentAlias = alias
	}

	return Attribute{
		column: goqu.I(parentAlias + identSeparator + path.Field()),
		joins:  joins,
	}
}

func (f Factory) Equal(attribute Attribute, value any) Predicate {
	return attribute.predicate(attribute.column.Eq(value))
}

func (f Factory) NotEqual(attribute Attribute, value any) Predicate {
	return attribute.predicate(attribute.column.Neq(value))
}

func (f Factory) In(attribute Attribute, values []any) Predicate {
	return attribute.predicate(attribute.column.In(values...))
}

func (f Factory) Not(predicate Predicate) Predicate {
	return Predicate{
		expression: goqu.L(literalNot, predicate.expression),
		joins:      predicate.joins,
	}
}

func (f Factory) IsNull(attribute Attribute) Predicate {
	return attribute.predicate(attribute.column.IsNull())
}

func (f Factory) IsNotNull(attribute Attribute) Predicate {
	return attribute.predicate(attribute.column.IsNotNull())
}

func (f Factory) GreaterThan(attribute Attribute, value any) Predicate {
	return attribute.predicate(attribute.column.Gt(value))
}

func (f Factory) GreaterThanOrEqual(attribute Attribute, value any) Predicate {
	return attribute.predicate(attribute.column.Gte(value))
}

func (f Factory) LessThan(attribute Attribute, value any) Predicate {
	return attribute.predicate(attribute.column.Lt(value))
}

func (f Factory) LessThanOrEqual(attribute Attribute, value any) Predicate {
	return attribute.predicate(attribute.column.Lte(value))
}

// UpperLike renders UPPER(<column>) LIKE <pattern>.
func (f Factory) UpperLike(attribute Attribute, pattern string) Predicate {
	return attribute.predicate(goqu.Func(funcUpper, attribute.column).Like(pattern))
}

// And combines the predicates and the union of their joins.
func (f Factory) And(predicates ...Predicate) Predicate {
	expressions := make([]exp.Expression, 0, len(predicates))
	var joins []join

	for _, p := range predicates {
		expressions = append(expressions, p.expression)
		joins = mergeJoins(joins, p.joins)
	}

	return Predicate{
		expression: goqu.And(expressions...),
		joins:      joins,
	}
}

// True returns a predicate that matches every root entity.
func (f Factory) True() Predicate {
	return Predicate{expression: goqu.L(literalTrue)}
}

/***** query building *****/

// Select returns a SELECT over the root table with the joins and the WHERE clause of the predicate.
// Columns are left to the caller. With a to-many join the rows are not unique per root entity.
func (f Factory) Select(where Predicate) *goqu.SelectDataset {
	ds := goqu.Dialect(dialectPostgres).From(f.rootTable)

	for _, j := range where.joins {
		ds = ds.InnerJoin(goqu.T(j.table).As(j.alias), goqu.On(j.on))
	}

	return ds.Where(where.expression)
}

// CountQuery counts the root entities matching the predicate, by distinct key column if a to-many join is involved.
func (f Factory) CountQuery(where Predicate, keyColumn string) *goqu.SelectDataset {
	if where.HasToManyJoin() {
		return f.Select(where).Select(goqu.COUNT(goqu.DISTINCT(f.rootColumn(keyColumn))))
	}

	return f.Select(where).Select(goqu.COUNT(goqu.Star()))
}

// FindKeysQuery selects the distinct key column values (as text) of the matching root entities, ordered by key.
func (f Factory) FindKeysQuery(where Predicate, keyColumn string) *goqu.SelectDataset {
	key := f.rootColumn(keyColumn)

	return f.Select(where).
		Select(goqu.Cast(key, castText).As(keyColumn)).
		GroupBy(key).
		Order(key.Asc())
}

func (f Factory) rootColumn(column string) exp.IdentifierExpression {
	return goqu.I(f.rootTable + identSeparator + column)
}

func (a Attribute) predicate(expression exp.Expression) Predicate {
	return Predicate{expression: expression, joins: a.joins}
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
