package services

import (
	"log"

	"bookapi/internal/models"
	"bookapi/internal/repositories"
	"bookapi/pkg/rabbitmq"
)

// BookService handles business logic related to books.
type BookService struct {
	repo     repositories.BookRepository
	mqClient *rabbitmq.Client // may be nil, event publishing is optional
}

// NewBookService creates a new BookService.
func NewBookService(repo repositories.BookRepository, mqClient *rabbitmq.Client) *BookService {
	return &BookService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllBooks retrieves all books.
func (s *BookService) GetAllBooks() ([]models.Book, error) {
	return s.repo.GetAll()
}

// GetBookByID retrieves a single book by its ID.
func (s *BookService) GetBookByID(id uint) (*models.Book, error) {
	return s.repo.GetByID(id)
}

// CreateBook creates a new book. The store assigns the ID.
func (s *BookService) CreateBook(book *models.Book) error {
	book.ID = 0 // ids are never client-assigned
	if err := s.repo.Create(book); err != nil {
		return err
	}
	s.publish("book.created", book.ID)
	return nil
}

// ReplaceBook fully overwrites an existing book.
func (s *BookService) ReplaceBook(book *models.Book) error {
	if err := s.repo.Replace(book); err != nil {
		return err
	}
	s.publish("book.updated", book.ID)
	return nil
}

// DeleteBook deletes a book by its ID. Reviews for the book are not
// removed.
func (s *BookService) DeleteBook(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("book.deleted", id)
	return nil
}

// publish emits a catalog event. Publishing is best effort: failures
// are logged and never fail the request.
func (s *BookService) publish(eventType string, bookID uint) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"book_id": bookID,
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for book %d: %v", eventType, bookID, err)
	}
}
