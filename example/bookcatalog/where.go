package bookcatalog

import (
	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

// Where compiles c into a single predicate for pf. Set filters are combined with AND,
// empty criteria match every book.
func Where[A, P any](pf queryfilter.PredicateFactory[A, P], c BookCriteria) P {
	return queryfilter.Conjunction[P]{}.
		Add(queryfilter.CompileFilter(pf, c.ID, idPath)).
		Add(queryfilter.CompileString(pf, c.Title, titlePath)).
		Add(queryfilter.CompileString(pf, c.ISBN, isbnPath)).
		Add(queryfilter.CompileRange(pf, c.Price, pricePath), !c.Price.IsEmpty()).
		Add(queryfilter.CompileRange(pf, c.Pages, pagesPath), !c.Pages.IsEmpty()).
		Add(queryfilter.CompileRange(pf, c.PublishedAt, publishedAtPath), !c.PublishedAt.IsEmpty()).
		Add(queryfilter.CompileFilter(pf, c.Available, availablePath)).
		Add(queryfilter.CompileString(pf, c.AuthorName, authorNamePath)).
		Add(queryfilter.CompileRange(pf, c.AuthorBirthYear, authorBirthYearPath), !c.AuthorBirthYear.IsEmpty()).
		Add(queryfilter.CompileString(pf, c.PublisherName, publisherNamePath)).
		Add(queryfilter.CompileString(pf, c.Tag, tagPath)).
		Predicate(pf)
}
