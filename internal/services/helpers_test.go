package services_test

import (
	"context"
	"fmt"
	"testing"

	"portal/internal/config"
	"portal/internal/database"
	"portal/internal/models"
	"portal/internal/repositories"
	"portal/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockGateway is a mock implementation of storage.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Upload(ctx context.Context, file storage.File, ownerID uint, category string) (string, error) {
	args := m.Called(ctx, file, ownerID, category)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockGateway) Rename(ctx context.Context, category string, oldOwnerID, newOwnerID uint, filename string) (string, error) {
	args := m.Called(ctx, category, oldOwnerID, newOwnerID, filename)
	return args.String(0), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

// newTestStore opens a private in-memory database with the full schema.
func newTestStore(t *testing.T) (*repositories.GORMStore, *gorm.DB) {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repositories.NewGORMStore(db), db
}

func ptr[T any](v T) *T {
	return &v
}

func seedUser(t *testing.T, db *gorm.DB, email string, userType models.UserType) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Email: email, PasswordHash: string(hash), UserType: userType, Active: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedSeller(t *testing.T, db *gorm.DB, email string, userType models.UserType) *models.Seller {
	t.Helper()
	user := seedUser(t, db, email, userType)
	seller := &models.Seller{FirstName: "Jane", LastName: "Doe", UserID: user.ID}
	require.NoError(t, db.Omit("User").Create(seller).Error)
	seller.User = user
	return seller
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Active: true}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedShop(t *testing.T, db *gorm.DB, sellerID uint, name string) *models.Shop {
	t.Helper()
	shop := &models.Shop{Name: name, SellerID: sellerID}
	require.NoError(t, db.Omit("Seller").Create(shop).Error)
	return shop
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
