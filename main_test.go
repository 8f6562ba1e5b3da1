package main

import (
	"context"
	"testing"

	"portal/internal/config"
	"portal/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGateway(t *testing.T) {
	gateway, err := newGateway(context.Background(), config.S3Config{})
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryGateway{}, gateway)

	gateway, err = newGateway(context.Background(), config.S3Config{
		Endpoint:  "https://sgp1.digitaloceanspaces.com",
		Region:    "us-east-1",
		Bucket:    "portal-images",
		AccessKey: "key",
		SecretKey: "secret",
	})
	require.NoError(t, err)
	assert.IsType(t, &storage.S3Gateway{}, gateway)
}
