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

// BookHandler handles HTTP requests for the book resource.
type BookHandler struct {
	service  *services.BookService
	validate *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(service *services.BookService) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the book routes. The router is expected to
// carry the auth middleware.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleGetBooks)
	bookRoutes.Post("/", h.HandleCreateBook)
	bookRoutes.Get("/:id", h.HandleGetBookByID)
	bookRoutes.Put("/:id", h.HandleReplaceBook)
	bookRoutes.Delete("/:id", h.HandleDeleteBook)
}

// HandleGetBooks retrieves all books.
func (h *BookHandler) HandleGetBooks(c *fiber.Ctx) error {
	books, err := h.service.GetAllBooks()
	if err != nil {
		log.Printf("Error getting all books: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve books",
		})
	}
	return c.JSON(books)
}

// HandleGetBookByID retrieves a single book by its ID.
func (h *BookHandler) HandleGetBookByID(c *fiber.Ctx) error {
	id, err := bookIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	book, err := h.service.GetBookByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Book with ID %d not found", id),
			})
		}
		log.Printf("Error getting book by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve book",
		})
	}
	return c.JSON(book)
}

// HandleCreateBook creates a new book.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		log.Printf("Error parsing create book request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(book); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.service.CreateBook(&book); err != nil {
		log.Printf("Error creating book: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create book",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(book)
}

// HandleReplaceBook fully overwrites an existing book. Partial payloads
// fail validation.
func (h *BookHandler) HandleReplaceBook(c *fiber.Ctx) error {
	id, err := bookIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		log.Printf("Error parsing replace book request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(book); err != nil {
		return validationErrorResponse(c, err)
	}

	book.ID = id
	if err := h.service.ReplaceBook(&book); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Book with ID %d not found", id),
			})
		}
		log.Printf("Error replacing book %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update book",
		})
	}

	return c.JSON(book)
}

// HandleDeleteBook deletes a book by its ID.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	id, err := bookIDParam(c)
	if err != nil {
		return badIDResponse(c)
	}

	if err := h.service.DeleteBook(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Book with ID %d not found", id),
			})
		}
		log.Printf("Error deleting book %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete book",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// bookIDParam parses the :id path parameter as a record id.
func bookIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid book id %q", c.Params("id"))
	}
	return uint(id), nil
}

func badIDResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Book id must be a positive integer",
	})
}
