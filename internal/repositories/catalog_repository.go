package repositories

import (
	"context"

	"portal/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	SetActive(ctx context.Context, id uint, active bool) error
}

// ShopRepository defines the interface for shop data access.
type ShopRepository interface {
	GetAll(ctx context.Context) ([]models.Shop, error)
	GetByID(ctx context.Context, id uint) (*models.Shop, error)
	Create(ctx context.Context, shop *models.Shop) error
}
