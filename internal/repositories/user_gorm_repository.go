package repositories

import (
	"context"
	"fmt"

	"portal/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its ID.
func (r *GORMUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := findOne[models.User](r.db.WithContext(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return user, nil
}

// GetByIDForUpdate retrieves a user and locks its row for the running transaction.
func (r *GORMUserRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.User, error) {
	user, err := findOne[models.User](forUpdate(r.db.WithContext(ctx)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock user %d: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := findOne[models.User](r.db.WithContext(ctx), "email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return user, nil
}

// UpdateEmail changes the email of a user.
func (r *GORMUserRepository) UpdateEmail(ctx context.Context, id uint, email string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("email", email)
	if res.Error != nil {
		return fmt.Errorf("failed to update email of user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %d not found for email update", id)
	}
	return nil
}

// SetActive flips the active flag of a user.
func (r *GORMUserRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return fmt.Errorf("failed to set active=%t on user %d: %w", active, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %d not found for activation change", id)
	}
	return nil
}
