package repositories

import "bookapi/internal/models"

// BookRepository defines the interface for book data access.
type BookRepository interface {
	GetAll() ([]models.Book, error)
	GetByID(id uint) (*models.Book, error)
	Create(book *models.Book) error
	Replace(book *models.Book) error
	Delete(id uint) error
}
