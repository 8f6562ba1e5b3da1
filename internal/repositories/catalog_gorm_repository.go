package repositories

import (
	"context"
	"fmt"

	"portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

func (r *GORMCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

func (r *GORMCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := findOne[models.Category](r.db.WithContext(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return category, nil
}

func (r *GORMCategoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := findOne[models.Category](r.db.WithContext(ctx), "name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by name %q: %w", name, err)
	}
	return category, nil
}

func (r *GORMCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *GORMCategoryRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return fmt.Errorf("failed to set active=%t on category %d: %w", active, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %d not found for activation change", id)
	}
	return nil
}

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{db: db}
}

func (r *GORMShopRepository) GetAll(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.WithContext(ctx).Preload("Seller").Order("id").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shops: %w", err)
	}
	return shops, nil
}

func (r *GORMShopRepository) GetByID(ctx context.Context, id uint) (*models.Shop, error) {
	shop, err := findOne[models.Shop](r.db.WithContext(ctx).Preload("Seller"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get shop by ID %d: %w", id, err)
	}
	return shop, nil
}

func (r *GORMShopRepository) Create(ctx context.Context, shop *models.Shop) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(shop).Error; err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}
