package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TirthDesai-Ascensus/BookStore/internal/database/books"
	"github.com/TirthDesai-Ascensus/BookStore/internal/entities"
)

// BookStore defines the repository operations the HTTP layer depends on.
type BookStore interface {
	GetAllBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
	CreateBook(book *entities.Book) error
	UpdateBook(book *entities.Book) (*entities.Book, error)
	DeleteBook(id uint) error
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// GetAllBooks returns every book in the catalog.
// GET /api/books
func (controller *BooksController) GetAllBooks(c *gin.Context) {
	allBooks, err := controller.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": allBooks, "count": len(allBooks)})
}

// GetBookByID returns a single book.
// GET /api/books/:id
func (controller *BooksController) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// SearchBooks returns books whose title or author contains the q parameter.
// An empty q matches the whole catalog.
// GET /api/books/search?q=term
func (controller *BooksController) SearchBooks(c *gin.Context) {
	found, err := controller.store.SearchBooks(c.Query("q"))
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": found, "count": len(found)})
}

// GetDistinctAuthors returns the set of distinct authors in the catalog.
// GET /api/books/authors
func (controller *BooksController) GetDistinctAuthors(c *gin.Context) {
	allBooks, err := controller.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	authors := books.DistinctAuthors(allBooks)
	c.JSON(http.StatusOK, gin.H{"authors": authors, "count": len(authors)})
}

// CreateBook adds a book to the catalog.
// POST /api/books
func (controller *BooksController) CreateBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondBadRequest(c, "invalid book payload: "+err.Error())
		return
	}

	if err := controller.store.CreateBook(&book); err != nil {
		if errors.Is(err, books.ErrDuplicateID) {
			respondConflict(c, "book id already in use")
			return
		}
		respondInternalError(c, err, "create book")
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook replaces every field of an existing book. The path ID must match
// the body ID when the body carries one; a body without an ID adopts the path
// ID. Responds with the record as stored after the update.
// PUT /api/books/:id
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		respondBadRequest(c, "invalid book payload: "+err.Error())
		return
	}

	if book.ID != 0 && book.ID != id {
		respondBadRequest(c, "path id and body id do not match")
		return
	}
	book.ID = id

	updated, err := controller.store.UpdateBook(&book)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteBook removes a book from the catalog.
// DELETE /api/books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteBook(id); err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "delete book")
		return
	}

	c.Status(http.StatusNoContent)
}
