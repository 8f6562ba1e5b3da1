package repositories

import (
	"context"

	"portal/internal/models"
)

// SellerRepository defines the interface for seller data access.
// Sellers are always returned with their User loaded.
type SellerRepository interface {
	GetAll(ctx context.Context) ([]models.Seller, error)
	GetByID(ctx context.Context, id uint) (*models.Seller, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Seller, error)
	Create(ctx context.Context, seller *models.Seller) error
	Update(ctx context.Context, seller *models.Seller) error
}

// AdminRepository defines the interface for admin data access.
// Admins are always returned with their User loaded.
type AdminRepository interface {
	GetAll(ctx context.Context) ([]models.Admin, error)
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, admin *models.Admin) error
}
