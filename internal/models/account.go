package models

// Admin is the profile attached 1:1 to a User of type Admin.
type Admin struct {
	Base
	FirstName string `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(100);not null"`
	UserID    uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User      *User  `json:"user,omitempty"`
}

// Seller is the profile attached 1:1 to a User of type Seller.
// It has no state of its own: whether a seller is active is read from its User.
type Seller struct {
	Base
	FirstName     string `json:"first_name" gorm:"type:varchar(100);not null"`
	LastName      string `json:"last_name" gorm:"type:varchar(100);not null"`
	ContactNumber string `json:"contact_number" gorm:"type:varchar(32)"`
	UserID        uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User          *User  `json:"user,omitempty"`
}

// FullName joins first and last name the way activity log entries print it.
func (s *Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// FullName joins first and last name the way activity log entries print it.
func (a *Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
