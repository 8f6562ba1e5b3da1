package models

// Product represents a product listed in a shop.
// ImagePath is the object storage key of the product image; when it is not
// empty it always points at an existing object.
type Product struct {
	Base
	Name        string    `json:"name" gorm:"type:varchar(150);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	ImageName   string    `json:"image_name" gorm:"type:varchar(255)"`
	ImagePath   string    `json:"image_path" gorm:"type:varchar(512)"`
	Active      bool      `json:"active" gorm:"not null"`
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
	Category    *Category `json:"category,omitempty"`
	ShopID      uint      `json:"shop_id" gorm:"index;not null"`
	Shop        *Shop     `json:"shop,omitempty"`
}
