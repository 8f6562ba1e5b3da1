package services

import (
	"context"
	"log"

	"portal/internal/apperrors"
	"portal/internal/models"
	"portal/internal/repositories"
)

// EventPublisher delivers committed activity entries to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// ActivityLogService writes and reads the audit trail.
type ActivityLogService struct {
	store     repositories.Store
	publisher EventPublisher
}

// NewActivityLogService creates a new ActivityLogService. publisher may be nil.
func NewActivityLogService(store repositories.Store, publisher EventPublisher) *ActivityLogService {
	return &ActivityLogService{
		store:     store,
		publisher: publisher,
	}
}

// Record appends an entry using tx, so it commits or rolls back together with
// the change it describes.
func (s *ActivityLogService) Record(ctx context.Context, tx repositories.Store, title, description, ip string) (*models.ActivityLog, error) {
	entry := &models.ActivityLog{
		Title:       title,
		Description: description,
		IPAddress:   ip,
	}
	if err := tx.ActivityLogs().Create(ctx, entry); err != nil {
		return nil, apperrors.Internal(err, "failed to write activity log")
	}
	return entry, nil
}

// Publish forwards a committed entry. Failures are logged, not returned: the
// entry is already durable in the database.
func (s *ActivityLogService) Publish(ctx context.Context, entry *models.ActivityLog) {
	if s.publisher == nil || entry == nil {
		return
	}
	if err := s.publisher.Publish(ctx, "activity."+entry.Title, entry); err != nil {
		log.Printf("Warning: Failed to publish activity %d (%s): %v", entry.ID, entry.Title, err)
	}
}

// ListRecent returns the newest entries first.
func (s *ActivityLogService) ListRecent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	entries, err := s.store.ActivityLogs().GetRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load activity log")
	}
	return entries, nil
}
