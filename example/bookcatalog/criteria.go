package bookcatalog

import (
	"errors"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

// Request parameter prefixes, e.g. "publisherName.in=Manning,Heise".
const (
	paramID              = "id"
	paramTitle           = "title"
	paramISBN            = "isbn"
	paramPrice           = "price"
	paramPages           = "pages"
	paramPublishedAt     = "publishedAt"
	paramAvailable       = "available"
	paramAuthorName      = "authorName"
	paramAuthorBirthYear = "authorBirthYear"
	paramPublisherName   = "publisherName"
	paramTag             = "tag"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// BookCriteria holds the filters of a book search. Every zero-valued filter is ignored.
type BookCriteria struct {
	ID              queryfilter.UUIDFilter    `json:"id"`
	Title           queryfilter.StringFilter  `json:"title"`
	ISBN            queryfilter.StringFilter  `json:"isbn"`
	Price           queryfilter.DoubleFilter  `json:"price"`
	Pages           queryfilter.IntFilter     `json:"pages"`
	PublishedAt     queryfilter.InstantFilter `json:"publishedAt"`
	Available       queryfilter.BooleanFilter `json:"available"`
	AuthorName      queryfilter.StringFilter  `json:"authorName"`
	AuthorBirthYear queryfilter.IntFilter     `json:"authorBirthYear"`
	PublisherName   queryfilter.StringFilter  `json:"publisherName"`
	Tag             queryfilter.StringFilter  `json:"tag"`
}

// ParseCriteria reads BookCriteria from request parameters. All malformed parameters are reported at once.
func ParseCriteria(values url.Values) (BookCriteria, error) {
	var (
		c    BookCriteria
		err  error
		errs []error
	)

	collect := func(e error) {
		if e != nil {
			errs = append(errs, e)
		}
	}

	c.ID, err = queryfilter.ParseFilter(values, paramID, queryfilter.ParseUUID)
	collect(err)

	c.Title, err = queryfilter.ParseStringFilter(values, paramTitle)
	collect(err)

	c.ISBN, err = queryfilter.ParseStringFilter(values, paramISBN)
	collect(err)

	c.Price, err = queryfilter.ParseRangeFilter(values, paramPrice, queryfilter.ParseFloat[float64])
	collect(err)

	c.Pages, err = queryfilter.ParseRangeFilter(values, paramPages, queryfilter.ParseInt[int])
	collect(err)

	c.PublishedAt, err = queryfilter.ParseRangeFilter(values, paramPublishedAt, queryfilter.ParseTime)
	collect(err)

	c.Available, err = queryfilter.ParseFilter(values, paramAvailable, queryfilter.ParseBool)
	collect(err)

	c.AuthorName, err = queryfilter.ParseStringFilter(values, paramAuthorName)
	collect(err)

	c.AuthorBirthYear, err = queryfilter.ParseRangeFilter(values, paramAuthorBirthYear, queryfilter.ParseInt[int])
	collect(err)

	c.PublisherName, err = queryfilter.ParseStringFilter(values, paramPublisherName)
	collect(err)

	c.Tag, err = queryfilter.ParseStringFilter(values, paramTag)
	collect(err)

	if len(errs) > 0 {
		return BookCriteria{}, errors.Join(errs...)
	}

	return c, nil
}

// DecodeCriteria reads BookCriteria from a JSON document. Unknown fields are ignored.
func DecodeCriteria(data []byte) (BookCriteria, error) {
	var c BookCriteria

	if err := jsonAPI.Unmarshal(data, &c); err != nil {
		return BookCriteria{}, errors.Join(queryfilter.ErrInvalidArgument, err)
	}

	return c, nil
}

// EncodeCriteria renders c as JSON, empty filters become {}.
func EncodeCriteria(c BookCriteria) ([]byte, error) {
	return jsonAPI.Marshal(c)
}

// IsEmpty reports whether no filter is set.
func (c BookCriteria) IsEmpty() bool {
	return c.ID.IsEmpty() &&
		c.Title.IsEmpty() &&
		c.ISBN.IsEmpty() &&
		c.Price.IsEmpty() &&
		c.Pages.IsEmpty() &&
		c.PublishedAt.IsEmpty() &&
		c.Available.IsEmpty() &&
		c.AuthorName.IsEmpty() &&
		c.AuthorBirthYear.IsEmpty() &&
		c.PublisherName.IsEmpty() &&
		c.Tag.IsEmpty()
}
