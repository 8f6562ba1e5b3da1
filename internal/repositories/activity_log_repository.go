package repositories

import (
	"context"
	"fmt"

	"portal/internal/models"

	"gorm.io/gorm"
)

// ActivityLogRepository appends to and reads the audit trail. There is no
// update or delete on purpose: entries are immutable.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	GetRecent(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

// GORMActivityLogRepository is a GORM implementation of ActivityLogRepository.
type GORMActivityLogRepository struct {
	db *gorm.DB
}

// NewGORMActivityLogRepository creates a new instance of GORMActivityLogRepository.
func NewGORMActivityLogRepository(db *gorm.DB) *GORMActivityLogRepository {
	return &GORMActivityLogRepository{db: db}
}

func (r *GORMActivityLogRepository) Create(ctx context.Context, entry *models.ActivityLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *GORMActivityLogRepository) GetRecent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent activity: %w", err)
	}
	return entries, nil
}
