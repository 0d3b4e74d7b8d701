package bookcatalog

import (
	"time"

	"github.com/AntonStoeckl/queryfilter-go/queryfilter"
)

// RestrictToPublishers limits c to books of the allowed publishers.
// A requested publisher outside allowed fails with queryfilter.ErrUnauthorized, a request without
// publisher filter is narrowed to allowed.
func RestrictToPublishers(c BookCriteria, allowed []string) (BookCriteria, error) {
	publisherName, err := queryfilter.BuildInOrThrow(c.PublisherName, allowed, false)
	if err != nil {
		return BookCriteria{}, err
	}

	c.PublisherName = publisherName

	return c, nil
}

// NarrowToTags keeps only the requested tags that are allowed, or all allowed tags if none of them was requested.
func NarrowToTags(c BookCriteria, allowed []string) (BookCriteria, error) {
	tag, err := queryfilter.BuildInFiltered(c.Tag, allowed)
	if err != nil {
		return BookCriteria{}, err
	}

	c.Tag = tag

	return c, nil
}

// CapPrice lowers the requested maximum price to limit. It never fails.
func CapPrice(c BookCriteria, limit float64) BookCriteria {
	c.Price = queryfilter.BuildLessThanOrEqualOrLess(c.Price, limit)

	return c
}

// PublishedSince requires a requested earliest publication date to be at or after since, else
// queryfilter.ErrUnauthorized. Without one, since becomes the earliest publication date.
func PublishedSince(c BookCriteria, since time.Time) (BookCriteria, error) {
	publishedAt, err := queryfilter.BuildGreaterThanOrEqualOrThrowFunc(c.PublishedAt, since, time.Time.Compare)
	if err != nil {
		return BookCriteria{}, err
	}

	c.PublishedAt = publishedAt

	return c, nil
}

// OnlyAvailable requires available books. Asking for unavailable ones is a queryfilter.ErrContradiction.
func OnlyAvailable(c BookCriteria) (BookCriteria, error) {
	available, err := queryfilter.BuildEquals(c.Available, true, false)
	if err != nil {
		return BookCriteria{}, err
	}

	c.Available = available

	return c, nil
}
