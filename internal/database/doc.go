// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── books/           # Book catalog CRUD operations
//
// # Usage
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookstore.db")
//
//	// Create the books repository
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use the repository
//	book, err := booksRepo.GetBookByID(123)
//
// Writes are committed per statement; the repository never holds state
// between calls, so each operation reads a fresh view of the store.
package database
