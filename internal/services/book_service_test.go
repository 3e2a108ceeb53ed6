package services_test

import (
	"fmt"
	"testing"

	"bookapi/internal/models"
	"bookapi/internal/repositories"
	"bookapi/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBookRepository is a mock implementation of repositories.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetAll() ([]models.Book, error) {
	args := m.Called()
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) GetByID(id uint) (*models.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) Create(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Replace(book *models.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func bookNotFoundErr(id uint) error {
	return fmt.Errorf("book with ID %d: %w", id, repositories.ErrNotFound)
}

func TestBookService_GetAllBooks(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	expected := []models.Book{
		{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", YearPublished: 1965, Summary: "Spice"},
		{ID: 2, Title: "Hyperion", Author: "Dan Simmons", Genre: "Sci-Fi", YearPublished: 1989, Summary: "Pilgrims"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	books, err := service.GetAllBooks()

	assert.NoError(t, err)
	assert.Equal(t, expected, books)
	mockRepo.AssertExpectations(t)
}

func TestBookService_GetBookByID(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	expected := &models.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", YearPublished: 1965, Summary: "Spice"}
	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()

	book, err := service.GetBookByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, book)

	mockRepo.On("GetByID", uint(99)).Return(nil, bookNotFoundErr(99)).Once()
	_, err = service.GetBookByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestBookService_CreateBook(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Book")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Book).ID = 7
	}).Return(nil).Once()

	// A client-supplied id must be discarded; the store assigns one.
	book := &models.Book{ID: 500, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", YearPublished: 1965, Summary: "Spice"}
	err := service.CreateBook(book)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), book.ID)
	mockRepo.AssertExpectations(t)
}

func TestBookService_ReplaceBook_NotFound(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	book := &models.Book{ID: 99, Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", YearPublished: 1965, Summary: "Spice"}
	mockRepo.On("Replace", book).Return(bookNotFoundErr(99)).Once()

	err := service.ReplaceBook(book)

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestBookService_DeleteBook(t *testing.T) {
	mockRepo := new(MockBookRepository)
	service := services.NewBookService(mockRepo, nil)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	assert.NoError(t, service.DeleteBook(1))

	mockRepo.On("Delete", uint(99)).Return(bookNotFoundErr(99)).Once()
	assert.ErrorIs(t, service.DeleteBook(99), repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
}
