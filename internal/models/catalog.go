package models

// Category is a classification tag referenced by products.
type Category struct {
	Base
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
	Description string `json:"description" gorm:"type:text"`
	Active      bool   `json:"active" gorm:"not null"`
}

// Shop is owned by a seller and groups its products.
type Shop struct {
	Base
	Name        string  `json:"name" gorm:"type:varchar(150);not null"`
	Description string  `json:"description" gorm:"type:text"`
	SellerID    uint    `json:"seller_id" gorm:"index;not null"`
	Seller      *Seller `json:"seller,omitempty"`
}
