package queryfilter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
	"github.com/AntonStoeckl/queryfilter-go/queryfilter/memengine"
)

var (
	pf        = memengine.NewFactory()
	valuePath = queryfilter.MustPath("x")
	namePath  = queryfilter.MustPath("name")
)

func entityWithX(x any) memengine.Entity {
	return memengine.Entity{"x": x}
}

func matchingXs(predicate memengine.Predicate, xs ...any) []any {
	matched := make([]any, 0, len(xs))
	for _, x := range xs {
		if memengine.Matches(entityWithX(x), predicate) {
			matched = append(matched, x)
		}
	}

	return matched
}

func Test_CompileRange_TruthTable(t *testing.T) {
	// arrange
	filter := queryfilter.NewRangeFilter[int]().WithGreaterThan(10).WithLessThanOrEqual(20)
	predicate := queryfilter.CompileRange(pf, filter, valuePath)

	tests := []struct {
		x        int
		expected bool
	}{
		{5, false},
		{10, false},
		{15, true},
		{20, true},
		{25, false},
	}

	for _, tt := range tests {
		// act
		matches := memengine.Matches(entityWithX(tt.x), predicate)

		// assert
		assert.Equal(t, tt.expected, matches, "x=%d", tt.x)
	}
}

func Test_CompileFilter_EqualsTakesPrecedence(t *testing.T) {
	inputs := []any{1, 2, 3, 4, nil}

	tests := []struct {
		name   string
		filter queryfilter.Filter[int]
	}{
		{"with_in", queryfilter.NewFilter[int]().WithEquals(1).WithIn([]int{2, 3})},
		{"with_not_equals", queryfilter.NewFilter[int]().WithEquals(1).WithNotEquals(1)},
		{"with_specified_false", queryfilter.NewFilter[int]().WithEquals(1).WithSpecified(false)},
		{"with_not_in", queryfilter.NewFilter[int]().WithEquals(1).WithNotIn([]int{1})},
	}

	equalsOnly, ok := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithEquals(1), valuePath)
	assert.True(t, ok)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate, ok := queryfilter.CompileFilter(pf, tt.filter, valuePath)

			assert.True(t, ok)
			assert.Equal(t, matchingXs(equalsOnly, inputs...), matchingXs(predicate, inputs...))
			assert.Equal(t, []any{1}, matchingXs(predicate, inputs...))
		})
	}
}

func Test_CompileFilter_InTakesPrecedenceOverTheRemainingFields(t *testing.T) {
	filter := queryfilter.NewFilter[int]().WithIn([]int{2, 3}).WithNotEquals(2).WithSpecified(false)

	predicate, ok := queryfilter.CompileFilter(pf, filter, valuePath)

	assert.True(t, ok)
	assert.Equal(t, []any{2, 3}, matchingXs(predicate, 1, 2, 3, nil))
}

func Test_CompileFilter_CombinesTheRemainingFieldsWithAnd(t *testing.T) {
	filter := queryfilter.NewFilter[int]().WithNotEquals(2).WithNotIn([]int{3, 4}).WithSpecified(true)

	predicate, ok := queryfilter.CompileFilter(pf, filter, valuePath)

	assert.True(t, ok)
	assert.Equal(t, []any{1, 5}, matchingXs(predicate, 1, 2, 3, 4, 5, nil))
}

func Test_CompileFilter_Specified(t *testing.T) {
	isNull, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithSpecified(false), valuePath)
	isNotNull, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithSpecified(true), valuePath)

	assert.Equal(t, []any{nil}, matchingXs(isNull, 1, nil))
	assert.Equal(t, []any{1}, matchingXs(isNotNull, 1, nil))
}

func Test_CompileFilter_NullNeverSatisfiesAComparison(t *testing.T) {
	notEquals, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithNotEquals(1), valuePath)
	notIn, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithNotIn([]int{1}), valuePath)

	assert.Equal(t, memengine.Unknown, memengine.Evaluate(entityWithX(nil), notEquals))
	assert.Equal(t, memengine.Unknown, memengine.Evaluate(entityWithX(nil), notIn))
	assert.Equal(t, memengine.True, memengine.Evaluate(entityWithX(2), notIn))
}

func Test_Compile_EmptyFilters(t *testing.T) {
	_, ok := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int](), valuePath)
	assert.False(t, ok, "empty Filter compiles to no predicate")

	_, ok = queryfilter.CompileString(pf, queryfilter.NewStringFilter(), namePath)
	assert.False(t, ok, "empty StringFilter compiles to no predicate")

	always := queryfilter.CompileRange(pf, queryfilter.NewRangeFilter[int](), valuePath)
	assert.Equal(t, []any{1, nil}, matchingXs(always, 1, nil), "empty RangeFilter compiles to always true")
}

func Test_Compile_EmptyListsAddNoPredicate(t *testing.T) {
	_, ok := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithIn([]int{}), valuePath)
	assert.False(t, ok)

	_, ok = queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithNotIn([]string{}), namePath)
	assert.False(t, ok)

	notEquals, ok := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int]().WithNotEquals(1).WithIn([]int{}), valuePath)
	assert.True(t, ok)
	assert.Equal(t, []any{2, 3}, matchingXs(notEquals, 1, 2, 3, nil))
}

func Test_CompileRange_IsTheConjunctionOfItsConstraints(t *testing.T) {
	// arrange
	full := queryfilter.NewRangeFilter[int]().WithSpecified(true).WithGreaterThan(10).WithLessThan(20)
	parts := []queryfilter.IntFilter{
		queryfilter.NewRangeFilter[int]().WithSpecified(true),
		queryfilter.NewRangeFilter[int]().WithGreaterThan(10),
		queryfilter.NewRangeFilter[int]().WithLessThan(20),
	}
	reduced := []queryfilter.IntFilter{
		full.WithoutSpecified(),
		full.WithoutGreaterThan(),
		full.WithoutLessThan(),
	}
	inputs := []any{nil, 5, 10, 15, 20, 25}

	evaluateAll := func(filter queryfilter.IntFilter) []memengine.Truth {
		predicate := queryfilter.CompileRange(pf, filter, valuePath)
		truths := make([]memengine.Truth, 0, len(inputs))
		for _, x := range inputs {
			truths = append(truths, memengine.Evaluate(entityWithX(x), predicate))
		}

		return truths
	}

	// act
	fullTruths := evaluateAll(full)

	// assert
	for i, x := range inputs {
		expected := memengine.True
		for _, part := range parts {
			expected = expected.And(evaluateAll(part)[i])
		}

		assert.Equal(t, expected, fullTruths[i], "x=%v", x)
	}

	for _, filter := range reduced {
		assert.NotEqual(t, fullTruths, evaluateAll(filter), filter.String())
	}
}

func Test_CompileRange_AllBounds(t *testing.T) {
	inclusive := queryfilter.NewRangeFilter[int]().WithGreaterThanOrEqual(10).WithLessThanOrEqual(20)
	exclusive := queryfilter.NewRangeFilter[int]().WithGreaterThan(10).WithLessThan(20)

	assert.Equal(t, []any{10, 15, 20}, matchingXs(queryfilter.CompileRange(pf, inclusive, valuePath), 5, 10, 15, 20, 25))
	assert.Equal(t, []any{15}, matchingXs(queryfilter.CompileRange(pf, exclusive, valuePath), 5, 10, 15, 20, 25))
}

func Test_CompileRange_Time(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	filter := queryfilter.NewRangeFilter[time.Time]().WithGreaterThanOrEqual(day(2)).WithLessThan(day(4))

	predicate := queryfilter.CompileRange(pf, filter, valuePath)

	assert.Equal(t, []any{day(2), day(3)}, matchingXs(predicate, day(1), day(2), day(3), day(4)))
}

func Test_CompileString_ContainsIsCaseInsensitive(t *testing.T) {
	predicate, ok := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithContains("ab"), valuePath)

	assert.True(t, ok)
	assert.Equal(t, []any{"xABy", "cab", "AB"}, matchingXs(predicate, "xABy", "cab", "AB", "a b", nil))
}

func Test_CompileString_CombinesContainsWithTheRemainingFields(t *testing.T) {
	filter := queryfilter.NewStringFilter().WithContains("ab").WithDoesNotContain("x").WithNotEquals("ab")

	predicate, ok := queryfilter.CompileString(pf, filter, valuePath)

	assert.True(t, ok)
	assert.Equal(t, []any{"cab", "Abc"}, matchingXs(predicate, "ab", "cab", "xab", "Abc"))
}

func Test_CompileString_EqualsAndInShortCircuit(t *testing.T) {
	equals, _ := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithEquals("ab").WithContains("zz"), valuePath)
	in, _ := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithIn([]string{"ab", "cd"}).WithDoesNotContain("a"), valuePath)

	assert.Equal(t, []any{"ab"}, matchingXs(equals, "ab", "zz"))
	assert.Equal(t, []any{"ab", "cd"}, matchingXs(in, "ab", "cd", "ef"))
}

func Test_Compile_PathHopsAreInnerJoins(t *testing.T) {
	// arrange
	publisherName := queryfilter.MustPath("name", queryfilter.Ref("author"), queryfilter.Ref("publisher"))

	withPublisher := memengine.Entity{"author": memengine.Entity{"publisher": memengine.Entity{"name": "Acme"}}}
	withUnnamedPublisher := memengine.Entity{"author": memengine.Entity{"publisher": memengine.Entity{"name": nil}}}
	withoutPublisher := memengine.Entity{"author": memengine.Entity{"publisher": nil}}
	withoutAuthor := memengine.Entity{"author": nil}
	entities := []memengine.Entity{withPublisher, withUnnamedPublisher, withoutPublisher, withoutAuthor}

	// act
	isNull, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[string]().WithSpecified(false), publisherName)
	notEquals, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[string]().WithNotEquals("Other"), publisherName)
	always := queryfilter.CompileRange(pf, queryfilter.NewRangeFilter[string](), publisherName)

	// assert
	assert.Equal(t, []memengine.Entity{withUnnamedPublisher}, memengine.Select(entities, isNull))
	assert.Equal(t, []memengine.Entity{withPublisher}, memengine.Select(entities, notEquals))
	assert.Len(t, memengine.Select(entities, always), 4, "an empty range filter needs no join")
}

func Test_Compile_ToManyPathMatchesAnyRow(t *testing.T) {
	tagName := queryfilter.MustPath("name", queryfilter.Ref("tags").ToMany())
	book := memengine.Entity{"tags": []memengine.Entity{{"name": "fantasy"}, {"name": "classic"}}}
	untagged := memengine.Entity{"tags": []memengine.Entity{}}

	in, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[string]().WithEquals("classic"), tagName)
	specified, _ := queryfilter.CompileFilter(pf, queryfilter.NewFilter[string]().WithSpecified(false), tagName)

	assert.True(t, memengine.Matches(book, in))
	assert.False(t, memengine.Matches(untagged, in))
	assert.False(t, memengine.Matches(untagged, specified))
}

func Test_Compile_ToManyConstraintsHoldForTheSameRow(t *testing.T) {
	// arrange
	tagName := queryfilter.MustPath("name", queryfilter.Ref("tags").ToMany())
	splitTags := memengine.Entity{"tags": []memengine.Entity{{"name": "AB"}, {"name": "XY"}}}
	oneTagFitsAll := memengine.Entity{"tags": []memengine.Entity{{"name": "AB"}, {"name": "ABC"}}}

	// act
	sameFilter, _ := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithContains("a").WithNotEquals("AB"), tagName)
	containsX, _ := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithContains("x"), tagName)
	equalsAB, _ := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithEquals("AB"), tagName)
	acrossFilters := queryfilter.Conjunction[memengine.Predicate]{}.With(containsX).With(equalsAB).Predicate(pf)

	// assert
	assert.False(t, memengine.Matches(splitTags, sameFilter))
	assert.True(t, memengine.Matches(oneTagFitsAll, sameFilter))
	assert.False(t, memengine.Matches(splitTags, acrossFilters), "predicates on one to-many path share the joined row")
}

func Test_Conjunction_FoldsOptionalPredicates(t *testing.T) {
	title, titleOK := queryfilter.CompileString(pf, queryfilter.NewStringFilter().WithContains("go"), namePath)
	_, emptyOK := queryfilter.CompileFilter(pf, queryfilter.NewFilter[int](), valuePath)
	price := queryfilter.CompileRange(pf, queryfilter.NewRangeFilter[int]().WithLessThan(30), valuePath)

	conjunction := queryfilter.Conjunction[memengine.Predicate]{}.
		Add(title, titleOK).
		Add(memengine.Predicate{}, emptyOK).
		With(price)

	predicate := conjunction.Predicate(pf)

	assert.Equal(t, 2, conjunction.Len())
	assert.True(t, memengine.Matches(memengine.Entity{"name": "Learning Go", "x": 25}, predicate))
	assert.False(t, memengine.Matches(memengine.Entity{"name": "Learning Go", "x": 35}, predicate))
	assert.False(t, memengine.Matches(memengine.Entity{"name": "Rust", "x": 25}, predicate))
}

func Test_Conjunction_WithoutPredicatesIsTrue(t *testing.T) {
	predicate := queryfilter.Conjunction[memengine.Predicate]{}.Predicate(pf)

	assert.True(t, memengine.Matches(memengine.Entity{}, predicate))
}
