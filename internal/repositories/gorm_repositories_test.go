package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"bookapi/internal/models"
	"bookapi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database, named after the
// test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Book{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func dune() *models.Book {
	return &models.Book{
		Title:         "Dune",
		Author:        "Frank Herbert",
		Genre:         "Sci-Fi",
		YearPublished: 1965,
		Summary:       "A desert planet and its spice.",
	}
}

func TestBookRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewGORMBookRepository(newTestDB(t))

	book := dune()
	assert.NoError(t, repo.Create(book))
	assert.NotZero(t, book.ID)

	got, err := repo.GetByID(book.ID)
	assert.NoError(t, err)
	assert.Equal(t, book, got)

	// Reads are idempotent without intervening writes.
	again, err := repo.GetByID(book.ID)
	assert.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestBookRepository_GetByID_NotFound(t *testing.T) {
	repo := repositories.NewGORMBookRepository(newTestDB(t))

	_, err := repo.GetByID(12345)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestBookRepository_Replace(t *testing.T) {
	repo := repositories.NewGORMBookRepository(newTestDB(t))

	book := dune()
	assert.NoError(t, repo.Create(book))

	replacement := &models.Book{
		ID:            book.ID,
		Title:         "Dune Messiah",
		Author:        "F. Herbert",
		Genre:         "Science Fiction",
		YearPublished: 1969,
		Summary:       "The sequel.",
	}
	assert.NoError(t, repo.Replace(replacement))

	got, err := repo.GetByID(book.ID)
	assert.NoError(t, err)
	// Full overwrite, no residue of the prior values.
	assert.Equal(t, replacement, got)
}

func TestBookRepository_Replace_NotFound(t *testing.T) {
	repo := repositories.NewGORMBookRepository(newTestDB(t))

	missing := dune()
	missing.ID = 12345
	err := repo.Replace(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Replace must never insert.
	_, err = repo.GetByID(12345)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestBookRepository_Delete(t *testing.T) {
	repo := repositories.NewGORMBookRepository(newTestDB(t))

	book := dune()
	assert.NoError(t, repo.Create(book))
	assert.NoError(t, repo.Delete(book.ID))

	_, err := repo.GetByID(book.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(book.ID), repositories.ErrNotFound)
}

func TestBookRepository_GetAllOrderedByID(t *testing.T) {
	repo := repositories.NewGORMBookRepository(newTestDB(t))

	for i := 0; i < 3; i++ {
		b := dune()
		b.Title = fmt.Sprintf("Book %d", i)
		assert.NoError(t, repo.Create(b))
	}

	books, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, books, 3)
	for i := 1; i < len(books); i++ {
		assert.Less(t, books[i-1].ID, books[i].ID)
	}
}

func TestReviewRepository_CreateAndListByBook(t *testing.T) {
	db := newTestDB(t)
	bookRepo := repositories.NewGORMBookRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	first, second := dune(), dune()
	assert.NoError(t, bookRepo.Create(first))
	assert.NoError(t, bookRepo.Create(second))

	assert.NoError(t, reviewRepo.Create(&models.Review{BookID: first.ID, UserID: 1, ReviewText: "Great", Rating: 5}))
	assert.NoError(t, reviewRepo.Create(&models.Review{BookID: first.ID, UserID: 2, ReviewText: "Fine", Rating: 3}))
	assert.NoError(t, reviewRepo.Create(&models.Review{BookID: second.ID, UserID: 1, ReviewText: "Meh", Rating: 2}))

	reviews, err := reviewRepo.GetByBookID(first.ID)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)
	for _, r := range reviews {
		assert.Equal(t, first.ID, r.BookID)
	}

	// Unknown book id yields an empty, non-nil slice.
	reviews, err = reviewRepo.GetByBookID(12345)
	assert.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewRepository_ReviewsSurviveBookDeletion(t *testing.T) {
	db := newTestDB(t)
	bookRepo := repositories.NewGORMBookRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)

	book := dune()
	assert.NoError(t, bookRepo.Create(book))
	assert.NoError(t, reviewRepo.Create(&models.Review{BookID: book.ID, UserID: 1, ReviewText: "Great", Rating: 5}))

	assert.NoError(t, bookRepo.Delete(book.ID))

	// Deletion does not cascade to reviews.
	reviews, err := reviewRepo.GetByBookID(book.ID)
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestUserRepository(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	user := &models.User{Username: "alice", Password: "hashed-credential"}
	assert.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hashed-credential", got.Password)

	byID, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// usernames are uniquely indexed
	err = repo.Create(&models.User{Username: "alice", Password: "other"})
	assert.Error(t, err)
}
