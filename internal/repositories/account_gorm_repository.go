package repositories

import (
	"context"
	"fmt"

	"portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSellerRepository is a GORM implementation of SellerRepository.
type GORMSellerRepository struct {
	db *gorm.DB
}

// NewGORMSellerRepository creates a new instance of GORMSellerRepository.
func NewGORMSellerRepository(db *gorm.DB) *GORMSellerRepository {
	return &GORMSellerRepository{db: db}
}

// GetAll retrieves all sellers ordered by ID.
func (r *GORMSellerRepository) GetAll(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&sellers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sellers: %w", err)
	}
	return sellers, nil
}

// GetByID retrieves a single seller.
func (r *GORMSellerRepository) GetByID(ctx context.Context, id uint) (*models.Seller, error) {
	seller, err := findOne[models.Seller](r.db.WithContext(ctx).Preload("User"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller by ID %d: %w", id, err)
	}
	return seller, nil
}

// GetByIDForUpdate retrieves a seller and locks its row. The user row is not
// locked; lock it through UserRepository when it is going to change.
func (r *GORMSellerRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Seller, error) {
	seller, err := findOne[models.Seller](forUpdate(r.db.WithContext(ctx)).Preload("User"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock seller %d: %w", id, err)
	}
	return seller, nil
}

// Create inserts the seller row only; the linked user must already exist.
func (r *GORMSellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// Update writes the profile columns of a seller.
func (r *GORMSellerRepository) Update(ctx context.Context, seller *models.Seller) error {
	res := r.db.WithContext(ctx).Model(seller).
		Select("first_name", "last_name", "contact_number").
		Updates(map[string]interface{}{
			"first_name":     seller.FirstName,
			"last_name":      seller.LastName,
			"contact_number": seller.ContactNumber,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update seller: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("seller with ID %d not found for update", seller.ID)
	}
	return nil
}

// GORMAdminRepository is a GORM implementation of AdminRepository.
type GORMAdminRepository struct {
	db *gorm.DB
}

// NewGORMAdminRepository creates a new instance of GORMAdminRepository.
func NewGORMAdminRepository(db *gorm.DB) *GORMAdminRepository {
	return &GORMAdminRepository{db: db}
}

func (r *GORMAdminRepository) GetAll(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to get all admins: %w", err)
	}
	return admins, nil
}

func (r *GORMAdminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := findOne[models.Admin](r.db.WithContext(ctx).Preload("User"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by ID %d: %w", id, err)
	}
	return admin, nil
}

func (r *GORMAdminRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := findOne[models.Admin](forUpdate(r.db.WithContext(ctx)).Preload("User"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock admin %d: %w", id, err)
	}
	return admin, nil
}

func (r *GORMAdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *GORMAdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	res := r.db.WithContext(ctx).Model(admin).
		Select("first_name", "last_name").
		Updates(map[string]interface{}{
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update admin: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("admin with ID %d not found for update", admin.ID)
	}
	return nil
}
