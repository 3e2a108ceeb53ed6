package repositories

import (
	"errors"
	"fmt"

	"bookapi/internal/models"

	"gorm.io/gorm"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// GetAll retrieves all books from the database, ordered by id ascending
// for deterministic listings.
func (r *GORMBookRepository) GetAll() ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := r.db.Order("id asc").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book by its ID from the database.
func (r *GORMBookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get book by ID %d: %w", id, err)
	}
	return &book, nil
}

// Create inserts a new book and assigns its ID.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// Replace overwrites every field of an existing book.
func (r *GORMBookRepository) Replace(book *models.Book) error {
	// Save would insert when the id matches nothing, so use an explicit
	// update of every content column and check RowsAffected instead.
	res := r.db.Model(book).
		Select("title", "author", "genre", "year_published", "summary").
		Updates(book)
	if res.Error != nil {
		return fmt.Errorf("failed to update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("book with ID %d: %w", book.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a book by its ID. Reviews referencing the book are
// left in place.
func (r *GORMBookRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Book{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("book with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
