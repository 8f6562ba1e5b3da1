package storage_test

import (
	"context"
	"strings"
	"testing"

	"portal/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "products/2/shoe.png", storage.Key("products", 2, "shoe.png"))
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"shoe.png":             "shoe.png",
		"../../etc/passwd":     "passwd",
		`C:\Users\me\shoe.png`: "shoe.png",
		"red shoe.png":         "red_shoe.png",
		"":                     "file",
		"..":                   "file",
		"bad\x00name.jpg":      "badname.jpg",
	}
	for in, want := range tests {
		assert.Equal(t, want, storage.SanitizeName(in), "input %q", in)
	}
}

func TestUniqueName(t *testing.T) {
	a, b := storage.UniqueName("red shoe.png"), storage.UniqueName("red shoe.png")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "-red_shoe.png"), a)
	assert.Equal(t, a, storage.SanitizeName(a))
}

func TestMemoryGatewayLifecycle(t *testing.T) {
	ctx := context.Background()
	g := storage.NewMemoryGateway()

	key, err := g.Upload(ctx, storage.File{Name: "shoe.png", Body: strings.NewReader("png")}, 2, "products")
	require.NoError(t, err)
	assert.Equal(t, "products/2/shoe.png", key)
	assert.True(t, g.Exists(key))

	newKey, err := g.Rename(ctx, "products", 2, 5, "shoe.png")
	require.NoError(t, err)
	assert.Equal(t, "products/5/shoe.png", newKey)
	assert.False(t, g.Exists(key))
	data, ok := g.Object(newKey)
	require.True(t, ok)
	assert.Equal(t, "png", string(data))

	require.NoError(t, g.Delete(ctx, newKey))
	assert.Empty(t, g.Keys())
}

func TestMemoryGatewayRenameMissingObject(t *testing.T) {
	g := storage.NewMemoryGateway()
	_, err := g.Rename(context.Background(), "products", 1, 2, "ghost.png")
	assert.ErrorContains(t, err, "products/1/ghost.png")
}

func TestMemoryGatewayHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := storage.NewMemoryGateway().Upload(ctx, storage.File{Name: "a.png"}, 1, "products")
	assert.ErrorIs(t, err, context.Canceled)
}
