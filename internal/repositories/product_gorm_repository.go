package repositories

import (
	"context"
	"fmt"

	"portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Category").Preload("Shop")
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.withRelations(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetLatest retrieves the most recently created active products.
func (r *GORMProductRepository) GetLatest(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.withRelations(ctx).
		Where("active = ?", true).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := findOne[models.Product](r.withRelations(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return product, nil
}

// GetByIDForUpdate retrieves a product without relations and locks its row.
func (r *GORMProductRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Product, error) {
	product, err := findOne[models.Product](forUpdate(r.db.WithContext(ctx)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to lock product %d: %w", id, err)
	}
	return product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update writes every column of the product, zero values included.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).Model(product).
		Select("name", "description", "price", "quantity", "image_name", "image_path", "category_id", "shop_id").
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"quantity":    product.Quantity,
			"image_name":  product.ImageName,
			"image_path":  product.ImagePath,
			"category_id": product.CategoryID,
			"shop_id":     product.ShopID,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not found for update", product.ID)
	}
	return nil
}

// SetActive flips the active flag of a product.
func (r *GORMProductRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return fmt.Errorf("failed to set active=%t on product %d: %w", active, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d not found for activation change", id)
	}
	return nil
}

// ClearImage drops the image reference of a product whose object is gone.
func (r *GORMProductRepository) ClearImage(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{"image_name": "", "image_path": ""}).Error
	if err != nil {
		return fmt.Errorf("failed to clear image of product %d: %w", id, err)
	}
	return nil
}
