package models

// UserType tells which profile a User record backs.
type UserType string

const (
	UserTypeAdmin  UserType = "Admin"
	UserTypeSeller UserType = "Seller"
	UserTypeBuyer  UserType = "Buyer"
)

// User is the identity record behind admins, sellers and buyers.
// Users are never hard-deleted; Active is toggled instead.
type User struct {
	Base
	Email        string   `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	PasswordHash string   `json:"-" gorm:"type:varchar(255);not null"`
	UserType     UserType `json:"user_type" gorm:"type:varchar(16);not null"`
	Active       bool     `json:"active" gorm:"not null"`
}
