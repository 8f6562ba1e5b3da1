package models

import "time"

// ActivityLog is an append-only audit record of administrative actions.
type ActivityLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(64);not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	IPAddress   string    `json:"ip_address" gorm:"type:varchar(64)"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
