package services_test

import (
	"context"
	"errors"
	"testing"

	"portal/internal/models"
	"portal/internal/repositories"
	"portal/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityLogService(t *testing.T) {
	store, _ := newTestStore(t)
	publisher := new(MockPublisher)
	service := services.NewActivityLogService(store, publisher)
	ctx := context.Background()

	var entries []*models.ActivityLog
	err := store.Transaction(ctx, func(tx repositories.Store) error {
		for _, title := range []string{"create-seller", "update-seller"} {
			entry, err := service.Record(ctx, tx, title, "description", "10.0.0.1")
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	require.NoError(t, err)

	recent, err := service.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "update-seller", recent[0].Title)

	publisher.On("Publish", mock.Anything, "activity.create-seller", entries[0]).
		Return(errors.New("broker down")).Once()
	service.Publish(ctx, entries[0])
	publisher.AssertExpectations(t)

	// Without a publisher, or without an entry, Publish does nothing.
	services.NewActivityLogService(store, nil).Publish(ctx, entries[1])
	service.Publish(ctx, nil)
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}
