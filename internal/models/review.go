package models

// Review represents user feedback attached to a book. BookID is taken
// from the request path, so it carries no validate tag. UserID is
// caller-supplied and is not checked against the users table. Deleting
// a book does not cascade to its reviews.
type Review struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	BookID     uint   `json:"book_id" gorm:"index;not null"`
	UserID     uint   `json:"user_id" validate:"required"`
	ReviewText string `json:"review_text" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
}
