package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

// MemoryGateway is an in-memory implementation of Gateway, used when no
// bucket is configured and in tests.
type MemoryGateway struct {
	objects map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryGateway creates a new, empty MemoryGateway.
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		objects: make(map[string][]byte),
	}
}

// Upload stores a copy of the file body.
func (g *MemoryGateway) Upload(ctx context.Context, file File, ownerID uint, category string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var data []byte
	if file.Body != nil {
		var err error
		if data, err = io.ReadAll(file.Body); err != nil {
			return "", fmt.Errorf("failed to read upload %s: %w", file.Name, err)
		}
	}

	key := Key(category, ownerID, SanitizeName(file.Name))
	g.mu.Lock()
	defer g.mu.Unlock()
	g.objects[key] = data
	return key, nil
}

// Delete removes an object. Deleting a missing key is not an error, like S3.
func (g *MemoryGateway) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.objects, key)
	return nil
}

// Rename moves an object to the folder of another owner.
func (g *MemoryGateway) Rename(ctx context.Context, category string, oldOwnerID, newOwnerID uint, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	oldKey := Key(category, oldOwnerID, filename)
	newKey := Key(category, newOwnerID, filename)

	g.mu.Lock()
	defer g.mu.Unlock()
	data, ok := g.objects[oldKey]
	if !ok {
		return "", fmt.Errorf("object %s not found for rename", oldKey)
	}
	delete(g.objects, oldKey)
	g.objects[newKey] = data
	return newKey, nil
}

// Exists reports whether an object is stored under key.
func (g *MemoryGateway) Exists(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.objects[key]
	return ok
}

// Object returns the stored bytes of key.
func (g *MemoryGateway) Object(key string) ([]byte, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	data, ok := g.objects[key]
	if !ok {
		return nil, false
	}
	return bytes.Clone(data), true
}

// Keys lists all stored keys in lexical order.
func (g *MemoryGateway) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	keys := make([]string, 0, len(g.objects))
	for k := range g.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
