package bookcatalog

// FoundBooks is the result of a book search.
type FoundBooks struct {
	BookIDs []string
	Count   int
}
