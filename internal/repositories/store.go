package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories that share one database handle.
// Repositories obtained from the Store passed to a Transaction callback all
// run inside that transaction.
type Store interface {
	Users() UserRepository
	Admins() AdminRepository
	Sellers() SellerRepository
	Shops() ShopRepository
	Categories() CategoryRepository
	Products() ProductRepository
	ActivityLogs() ActivityLogRepository

	// Transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// GORMStore is the GORM implementation of Store.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a Store on top of db.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{db: db}
}

func (s *GORMStore) Users() UserRepository               { return NewGORMUserRepository(s.db) }
func (s *GORMStore) Admins() AdminRepository             { return NewGORMAdminRepository(s.db) }
func (s *GORMStore) Sellers() SellerRepository           { return NewGORMSellerRepository(s.db) }
func (s *GORMStore) Shops() ShopRepository               { return NewGORMShopRepository(s.db) }
func (s *GORMStore) Categories() CategoryRepository      { return NewGORMCategoryRepository(s.db) }
func (s *GORMStore) Products() ProductRepository         { return NewGORMProductRepository(s.db) }
func (s *GORMStore) ActivityLogs() ActivityLogRepository { return NewGORMActivityLogRepository(s.db) }

// Transaction runs fn against a Store bound to a single database transaction.
func (s *GORMStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMStore(tx))
	})
}
