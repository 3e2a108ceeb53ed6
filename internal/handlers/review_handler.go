package handlers

import (
	"errors"
	"fmt"
	"log"

	"bookapi/internal/models"
	"bookapi/internal/repositories"
	"bookapi/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews scoped to a book.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes. The router is expected to
// carry the auth middleware.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/books/:id/reviews")
	reviewRoutes.Get("/", h.HandleListReviews)
	reviewRoutes.Post("/", h.HandleCreateReview)
}

// HandleListReviews lists all reviews for a book. A book without
// reviews yields an empty list, never an error.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	reviews, err := h.service.ListReviewsForBook(bookID)
	if err != nil {
		log.Printf("Error listing reviews for book %d: %v", bookID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
		})
	}
	return c.JSON(reviews)
}

// HandleCreateReview attaches a new review to a book. The book must
// exist.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	bookID, err := bookIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing create review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(review); err != nil {
		return validationErrorResponse(c, err)
	}

	created, err := h.service.CreateReview(bookID, &review)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Book with ID %d not found", bookID),
			})
		}
		log.Printf("Error creating review for book %d: %v", bookID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
