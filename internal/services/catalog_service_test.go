package services_test

import (
	"context"
	"testing"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService(t *testing.T) {
	store, _ := newTestStore(t)
	service := services.NewCategoryService(store)
	ctx := context.Background()

	category, err := service.Create(ctx, services.CategoryDetails{Name: "Shoes", Description: "Footwear"})
	require.NoError(t, err)
	assert.True(t, category.Active)

	_, err = service.Create(ctx, services.CategoryDetails{Name: "Shoes"})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, apperrors.ReasonNameTaken, appErr.Reason)

	_, err = service.Create(ctx, services.CategoryDetails{})
	assert.True(t, apperrors.Is(err, apperrors.KindInvalid))

	require.NoError(t, service.SetActive(ctx, category.ID, false))
	loaded, err := service.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, loaded.Active)

	err = service.SetActive(ctx, 99, true)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	all, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestShopService(t *testing.T) {
	store, db := newTestStore(t)
	service := services.NewShopService(store)
	ctx := context.Background()
	seller := seedSeller(t, db, "seller@example.com", models.UserTypeSeller)
	buyer := seedSeller(t, db, "buyer@example.com", models.UserTypeBuyer)

	shop, err := service.Create(ctx, services.ShopDetails{Name: "Corner", SellerID: seller.ID})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, shop.SellerID)

	loaded, err := service.GetByID(ctx, shop.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Seller)
	assert.Equal(t, "Jane", loaded.Seller.FirstName)

	_, err = service.Create(ctx, services.ShopDetails{Name: "Ghost", SellerID: 99})
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "No Seller Found.", appErr.Message)

	_, err = service.Create(ctx, services.ShopDetails{Name: "Nope", SellerID: buyer.ID})
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))

	_, err = service.GetByID(ctx, 99)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	shops, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, shops, 1)
}
