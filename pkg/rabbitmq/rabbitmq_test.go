package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublishing(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msg, err := NewPublishing("activity.create-seller", map[string]string{"title": "create-seller"}, at)
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, "activity.create-seller", msg.Type)
	assert.Equal(t, uint8(amqp.Persistent), msg.DeliveryMode)
	assert.Equal(t, at, msg.Timestamp)

	var body map[string]string
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "create-seller", body["title"])
}

func TestNewPublishingRejectsUnmarshalablePayload(t *testing.T) {
	_, err := NewPublishing("activity.x", make(chan int), time.Now())
	assert.ErrorContains(t, err, "activity.x")
}

func TestPublishWithoutChannel(t *testing.T) {
	err := (&Client{}).Publish(context.Background(), "activity.x", nil)
	assert.ErrorContains(t, err, "not available")
}
