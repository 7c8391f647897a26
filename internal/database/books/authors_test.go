package books

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TirthDesai-Ascensus/BookStore/internal/entities"
)

func TestDistinctAuthors(t *testing.T) {
	t.Run("deduplicates authors", func(t *testing.T) {
		books := []entities.Book{
			{Author: "A"},
			{Author: "B"},
			{Author: "A"},
		}

		authors := DistinctAuthors(books)

		assert.Len(t, authors, 2)
		assert.ElementsMatch(t, []string{"A", "B"}, authors)
	})

	t.Run("result is independent of input order", func(t *testing.T) {
		forward := DistinctAuthors([]entities.Book{{Author: "A"}, {Author: "B"}, {Author: "A"}})
		backward := DistinctAuthors([]entities.Book{{Author: "A"}, {Author: "B"}, {Author: "B"}})

		assert.ElementsMatch(t, forward, backward)
	})

	t.Run("empty input yields an empty set", func(t *testing.T) {
		assert.Empty(t, DistinctAuthors(nil))
		assert.Empty(t, DistinctAuthors([]entities.Book{}))
	})

	t.Run("single author appears exactly once", func(t *testing.T) {
		books := []entities.Book{
			{Title: "Dune", Author: "Herbert"},
			{Title: "Dune Messiah", Author: "Herbert"},
			{Title: "Children of Dune", Author: "Herbert"},
		}

		assert.Equal(t, []string{"Herbert"}, DistinctAuthors(books))
	})
}
