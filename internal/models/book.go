package models

// Book represents a catalog entry. All five content fields are
// required; updates replace the record wholesale.
type Book struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Genre         string `json:"genre" validate:"required"`
	YearPublished int    `json:"year_published" validate:"required"`
	Summary       string `json:"summary" validate:"required"`
}
