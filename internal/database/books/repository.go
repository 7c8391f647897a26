// Package books provides database operations for the book catalog.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
//
// # Interface Implementation
//
//	var _ http.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
//
// Identifier-targeted operations (GetBookByID, UpdateBook, DeleteBook) return
// ErrNotFound when the record is absent; every other failure comes from the
// storage backend and is propagated unchanged, never retried.
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/TirthDesai-Ascensus/BookStore/internal/entities"
)

// ErrNotFound is returned when an operation targets a book absent from storage.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateID is returned when a create collides with an existing book ID.
var ErrDuplicateID = errors.New("book id already in use")

// Repository handles all book catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllBooks retrieves every book, in storage scan order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

// SearchBooks returns books whose title or author contains the query as a
// case-insensitive substring. An empty query matches every book. Result
// ordering follows storage scan order.
func (r *Repository) SearchBooks(query string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", searchPattern, searchPattern).
		Find(&books).Error
	return books, err
}

// CreateBook inserts a new book. A zero ID lets the backend allocate one; a
// client-supplied ID that collides with an existing record fails with
// ErrDuplicateID (the insert is rejected, never turned into an overwrite).
func (r *Repository) CreateBook(book *entities.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateID
		}
		return err
	}
	return nil
}

// UpdateBook overwrites every mutable field of the record identified by
// book.ID with the supplied values, zero values included. The ID and CreatedAt
// are preserved. Returns the post-update record as read back from storage so
// backend-managed fields are reflected.
func (r *Repository) UpdateBook(book *entities.Book) (*entities.Book, error) {
	var existing entities.Book
	if err := r.db.First(&existing, book.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Save writes the full record, so omitted fields are stored as their
	// zero values rather than merged with the old record.
	book.CreatedAt = existing.CreatedAt
	if err := r.db.Save(book).Error; err != nil {
		return nil, err
	}

	var updated entities.Book
	if err := r.db.First(&updated, book.ID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes the book with the given ID. When no such record exists
// it returns ErrNotFound and leaves storage untouched.
func (r *Repository) DeleteBook(id uint) error {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return r.db.Delete(&entities.Book{}, id).Error
}
