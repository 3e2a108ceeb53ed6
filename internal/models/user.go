package models

// User represents a registered account. The password column only ever
// holds a bcrypt hash, never the plaintext credential.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
}
