package repositories

import "bookapi/internal/models"

// ReviewRepository defines the interface for review data access.
// Reviews are append-only: no update or delete operation exists.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBookID(bookID uint) ([]models.Review, error)
}
