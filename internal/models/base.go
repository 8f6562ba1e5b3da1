package models

import "time"

// Base holds the columns shared by every mutable table.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All returns every model that the schema migration has to know about.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Admin{},
		&Seller{},
		&Shop{},
		&Category{},
		&Product{},
		&ActivityLog{},
	}
}
