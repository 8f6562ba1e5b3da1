package services

import (
	"context"
	"path"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/repositories"
	"portal/internal/storage"
)

// productFolder is the storage category product images live under.
const productFolder = "products"

// ProductDetails is the JSON "details" part of a product form. Only non-nil
// fields are applied on update.
type ProductDetails struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	CategoryID  *uint    `json:"category_id"`
	ShopID      *uint    `json:"shop_id"`
}

func (d ProductDetails) populated() int {
	n := 0
	for _, set := range []bool{
		d.Name != nil, d.Description != nil, d.Price != nil,
		d.Quantity != nil, d.CategoryID != nil, d.ShopID != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// ProductService handles business logic related to products.
type ProductService struct {
	store       repositories.Store
	storage     storage.Gateway
	latestLimit int
}

// NewProductService creates a new ProductService.
func NewProductService(store repositories.Store, gateway storage.Gateway, latestLimit int) *ProductService {
	return &ProductService{
		store:       store,
		storage:     gateway,
		latestLimit: latestLimit,
	}
}

// ListAll retrieves all products.
func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Products().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load products")
	}
	return products, nil
}

// ListLatest retrieves the newest active products.
func (s *ProductService) ListLatest(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Products().GetLatest(ctx, s.latestLimit)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load latest products")
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load product")
	}
	if product == nil {
		return nil, apperrors.NotFound("Product")
	}
	return product, nil
}

func resolveCategory(ctx context.Context, repos repositories.Store, id uint) error {
	category, err := repos.Categories().GetByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err, "failed to load category")
	}
	if category == nil {
		return apperrors.NotFound("Category")
	}
	return nil
}

func resolveShop(ctx context.Context, repos repositories.Store, id uint) error {
	shop, err := repos.Shops().GetByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err, "failed to load shop")
	}
	if shop == nil {
		return apperrors.NotFound("Shop")
	}
	return nil
}

// Create uploads the image to the shop's folder and inserts the product.
// Details with at most one field are ignored.
func (s *ProductService) Create(ctx context.Context, details ProductDetails, file *storage.File) (Outcome, error) {
	if details.populated() <= 1 {
		return OutcomeNoOp, nil
	}
	if err := validateStruct(details); err != nil {
		return OutcomeNoOp, err
	}
	missing := map[string]string{}
	if details.Name == nil || *details.Name == "" {
		missing["name"] = "Field 'name' failed on the 'required' tag"
	}
	if details.CategoryID == nil {
		missing["category_id"] = "Field 'category_id' failed on the 'required' tag"
	}
	if details.ShopID == nil {
		missing["shop_id"] = "Field 'shop_id' failed on the 'required' tag"
	}
	if file == nil {
		missing["image_file"] = "Field 'image_file' failed on the 'required' tag"
	}
	if len(missing) > 0 {
		return OutcomeNoOp, apperrors.Invalid("Validation failed", missing)
	}

	if err := resolveCategory(ctx, s.store, *details.CategoryID); err != nil {
		return OutcomeNoOp, err
	}
	if err := resolveShop(ctx, s.store, *details.ShopID); err != nil {
		return OutcomeNoOp, err
	}

	upload := *file
	upload.Name = storage.UniqueName(file.Name)
	key, err := s.storage.Upload(ctx, upload, *details.ShopID, productFolder)
	if err != nil {
		return OutcomeNoOp, apperrors.Internal(err, "failed to upload product image")
	}

	product := &models.Product{
		Name:       *details.Name,
		ImageName:  path.Base(key),
		ImagePath:  key,
		Active:     true,
		CategoryID: *details.CategoryID,
		ShopID:     *details.ShopID,
	}
	if details.Description != nil {
		product.Description = *details.Description
	}
	if details.Price != nil {
		product.Price = *details.Price
	}
	if details.Quantity != nil {
		product.Quantity = *details.Quantity
	}
	if err := s.store.Products().Create(ctx, product); err != nil {
		var undo compensations
		undo.add(func(ctx context.Context) error { return s.storage.Delete(ctx, key) })
		undo.run(ctx)
		return OutcomeNoOp, apperrors.Internal(err, "failed to create product")
	}
	return OutcomeApplied, nil
}

// Update applies the supplied details. A new file replaces the old image; a
// shop change without a file moves the existing image to the new shop's
// folder.
func (s *ProductService) Update(ctx context.Context, id uint, details ProductDetails, file *storage.File) (Outcome, error) {
	if details.populated() == 0 && file == nil {
		return OutcomeNoOp, nil
	}
	if err := validateStruct(details); err != nil {
		return OutcomeNoOp, err
	}

	var undo compensations
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		if details.CategoryID != nil {
			if err := resolveCategory(ctx, tx, *details.CategoryID); err != nil {
				return err
			}
		}
		if details.ShopID != nil {
			if err := resolveShop(ctx, tx, *details.ShopID); err != nil {
				return err
			}
		}
		product, err := tx.Products().GetByIDForUpdate(ctx, id)
		if err != nil {
			return apperrors.Internal(err, "failed to load product")
		}
		if product == nil {
			return apperrors.NotFound("Product")
		}

		oldShopID := product.ShopID
		shopID := oldShopID
		if details.ShopID != nil {
			shopID = *details.ShopID
		}

		switch {
		case file != nil:
			if product.ImagePath != "" {
				if err := s.storage.Delete(ctx, product.ImagePath); err != nil {
					return apperrors.Internal(err, "failed to delete old product image")
				}
				// The rollback keeps the old path, which no longer exists.
				undo.add(func(ctx context.Context) error {
					return s.store.Products().ClearImage(ctx, id)
				})
			}
			upload := *file
			upload.Name = storage.UniqueName(file.Name)
			key, err := s.storage.Upload(ctx, upload, shopID, productFolder)
			if err != nil {
				return apperrors.Internal(err, "failed to upload product image")
			}
			undo.add(func(ctx context.Context) error { return s.storage.Delete(ctx, key) })
			product.ImagePath = key
			product.ImageName = path.Base(key)
		case shopID != oldShopID && product.ImageName != "":
			filename := product.ImageName
			key, err := s.storage.Rename(ctx, productFolder, oldShopID, shopID, filename)
			if err != nil {
				return apperrors.Internal(err, "failed to move product image")
			}
			undo.add(func(ctx context.Context) error {
				_, err := s.storage.Rename(ctx, productFolder, shopID, oldShopID, filename)
				return err
			})
			product.ImagePath = key
		}

		if details.Name != nil {
			product.Name = *details.Name
		}
		if details.Description != nil {
			product.Description = *details.Description
		}
		if details.Price != nil {
			product.Price = *details.Price
		}
		if details.Quantity != nil {
			product.Quantity = *details.Quantity
		}
		if details.CategoryID != nil {
			product.CategoryID = *details.CategoryID
		}
		product.ShopID = shopID

		if err := tx.Products().Update(ctx, product); err != nil {
			return apperrors.Internal(err, "failed to update product")
		}
		return nil
	})
	if err != nil {
		undo.run(ctx)
		return OutcomeNoOp, apperrors.Wrap(err, "failed to update product")
	}
	return OutcomeApplied, nil
}

// SetActive activates or deactivates a product.
func (s *ProductService) SetActive(ctx context.Context, id uint, active bool) error {
	product, err := s.store.Products().GetByID(ctx, id)
	if err != nil {
		return apperrors.Internal(err, "failed to load product")
	}
	if product == nil {
		return apperrors.NotFound("Product")
	}
	if err := s.store.Products().SetActive(ctx, id, active); err != nil {
		return apperrors.Internal(err, "failed to change product activation")
	}
	return nil
}
