package bookcatalog

import (
	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

// RootTable is the table books are stored in.
const RootTable = "books"

var (
	authorRef    = queryfilter.Ref("author").InTable("authors")
	publisherRef = queryfilter.Ref("publisher").InTable("publishers")
	tagsRef      = queryfilter.Ref("tags").ToMany().JoinedOn("id", "book_id")
)

var (
	idPath          = queryfilter.MustPath("id")
	titlePath       = queryfilter.MustPath("title")
	isbnPath        = queryfilter.MustPath("isbn")
	pricePath       = queryfilter.MustPath("price")
	pagesPath       = queryfilter.MustPath("pages")
	publishedAtPath = queryfilter.MustPath("published_at")
	availablePath   = queryfilter.MustPath("available")

	authorNamePath      = queryfilter.MustPath("name", authorRef)
	authorBirthYearPath = queryfilter.MustPath("birth_year", authorRef)
	publisherNamePath   = queryfilter.MustPath("name", authorRef, publisherRef)
	tagPath             = queryfilter.MustPath("name", tagsRef)
)
