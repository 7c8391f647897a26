package books

import "github.com/TirthDesai-Ascensus/BookStore/internal/entities"

// DistinctAuthors returns the set of distinct author values among the given
// books. Each author appears exactly once; callers must not depend on the
// ordering. The input is an already-materialized slice, so the derivation
// needs no storage access.
func DistinctAuthors(books []entities.Book) []string {
	seen := make(map[string]struct{}, len(books))
	authors := make([]string, 0, len(books))
	for _, book := range books {
		if _, ok := seen[book.Author]; ok {
			continue
		}
		seen[book.Author] = struct{}{}
		authors = append(authors, book.Author)
	}
	return authors
}
