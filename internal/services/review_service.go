package services

import (
	"fmt"
	"log"

	"bookapi/internal/models"
	"bookapi/internal/repositories"
	"bookapi/pkg/rabbitmq"
)

// ReviewService handles business logic related to book reviews.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	bookRepo   repositories.BookRepository
	mqClient   *rabbitmq.Client // may be nil, event publishing is optional
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, bookRepo repositories.BookRepository, mqClient *rabbitmq.Client) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		mqClient:   mqClient,
	}
}

// CreateReview attaches a review to an existing book. The referenced
// book must exist; a missing book surfaces as repositories.ErrNotFound.
func (s *ReviewService) CreateReview(bookID uint, review *models.Review) (*models.Review, error) {
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		return nil, fmt.Errorf("cannot review book %d: %w", bookID, err)
	}

	review.ID = 0 // ids are never client-assigned
	review.BookID = bookID
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review for book %d: %w", bookID, err)
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"review_id": review.ID,
			"book_id":   review.BookID,
			"user_id":   review.UserID,
			"rating":    review.Rating,
		}
		if err := s.mqClient.PublishEvent("review.created", payload); err != nil {
			log.Printf("Warning: failed to publish review.created event for review %d: %v", review.ID, err)
		}
	}

	return review, nil
}

// ListReviewsForBook returns all reviews for a book id. A book with no
// reviews, including an unknown book id, yields an empty slice.
func (s *ReviewService) ListReviewsForBook(bookID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByBookID(bookID)
}
