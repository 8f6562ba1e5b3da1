package repositories

import (
	"context"

	"portal/internal/models"
)

// UserRepository defines the interface for user data access.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateEmail(ctx context.Context, id uint, email string) error
	SetActive(ctx context.Context, id uint, active bool) error
}
