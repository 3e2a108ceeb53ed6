package repositories

import (
	"fmt"

	"bookapi/internal/models"

	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a new review and assigns its ID.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByBookID retrieves all reviews for a book, ordered by id
// ascending. An unknown book id yields an empty slice, not an error.
func (r *GORMReviewRepository) GetByBookID(bookID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.Order("id asc").Find(&reviews, "book_id = ?", bookID).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for book %d: %w", bookID, err)
	}
	return reviews, nil
}
