package services

import (
	"context"
	"errors"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/repositories"
)

// CategoryDetails is the body used to create a category.
type CategoryDetails struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// CategoryService manages product categories.
type CategoryService struct {
	store repositories.Store
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store repositories.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) ListAll(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.Categories().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load categories")
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.store.Categories().GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load category")
	}
	if category == nil {
		return nil, apperrors.NotFound("Category")
	}
	return category, nil
}

func nameTaken() *apperrors.Error {
	return apperrors.Conflict(apperrors.ReasonNameTaken, "The category name that you provided is already taken.")
}

// Create adds an active category with a unique name.
func (s *CategoryService) Create(ctx context.Context, details CategoryDetails) (*models.Category, error) {
	if err := validateStruct(details); err != nil {
		return nil, err
	}
	existing, err := s.store.Categories().GetByName(ctx, details.Name)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to look up category")
	}
	if existing != nil {
		return nil, nameTaken()
	}

	category := &models.Category{
		Name:        details.Name,
		Description: details.Description,
		Active:      true,
	}
	if err := s.store.Categories().Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, nameTaken()
		}
		return nil, apperrors.Internal(err, "failed to create category")
	}
	return category, nil
}

func (s *CategoryService) SetActive(ctx context.Context, id uint, active bool) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.store.Categories().SetActive(ctx, id, active); err != nil {
		return apperrors.Internal(err, "failed to change category activation")
	}
	return nil
}

// ShopDetails is the body used to open a shop for a seller.
type ShopDetails struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	SellerID    uint   `json:"seller_id" validate:"required"`
}

// ShopService manages the shops sellers sell through.
type ShopService struct {
	store repositories.Store
}

// NewShopService creates a new ShopService.
func NewShopService(store repositories.Store) *ShopService {
	return &ShopService{store: store}
}

func (s *ShopService) ListAll(ctx context.Context) ([]models.Shop, error) {
	shops, err := s.store.Shops().GetAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load shops")
	}
	return shops, nil
}

func (s *ShopService) GetByID(ctx context.Context, id uint) (*models.Shop, error) {
	shop, err := s.store.Shops().GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load shop")
	}
	if shop == nil {
		return nil, apperrors.NotFound("Shop")
	}
	return shop, nil
}

// Create opens a shop owned by an existing seller account.
func (s *ShopService) Create(ctx context.Context, details ShopDetails) (*models.Shop, error) {
	if err := validateStruct(details); err != nil {
		return nil, err
	}
	seller, err := s.store.Sellers().GetByID(ctx, details.SellerID)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load seller")
	}
	if seller == nil {
		return nil, apperrors.NotFound("Seller")
	}
	if seller.User == nil || seller.User.UserType != models.UserTypeSeller {
		return nil, apperrors.Forbidden("The account is not a seller account.")
	}

	shop := &models.Shop{
		Name:        details.Name,
		Description: details.Description,
		SellerID:    seller.ID,
	}
	if err := s.store.Shops().Create(ctx, shop); err != nil {
		return nil, apperrors.Internal(err, "failed to create shop")
	}
	shop.Seller = seller
	return shop, nil
}
