// Package storage moves product images in and out of object storage.
// Keys always have the shape {category}/{ownerID}/{filename}.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// File is an uploaded file on its way to the bucket.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Gateway is the object storage used by the domain services.
type Gateway interface {
	// Upload stores file under {category}/{ownerID}/{name} and returns the key.
	Upload(ctx context.Context, file File, ownerID uint, category string) (string, error)
	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
	// Rename moves {category}/{oldOwnerID}/{filename} to {category}/{newOwnerID}/{filename}
	// and returns the new key.
	Rename(ctx context.Context, category string, oldOwnerID, newOwnerID uint, filename string) (string, error)
}

// Key builds the storage key of a file.
func Key(category string, ownerID uint, filename string) string {
	return fmt.Sprintf("%s/%d/%s", category, ownerID, filename)
}

// SanitizeName reduces a client supplied file name to a single safe path segment.
func SanitizeName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == 0x7f:
			return -1
		case r == ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "file"
	}
	return name
}

// UniqueName prefixes the sanitized name with a random id so that two uploads
// with the same client file name never share an object.
func UniqueName(name string) string {
	return uuid.NewString() + "-" + SanitizeName(name)
}
