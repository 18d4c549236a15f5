// Package storage holds the key-value stores behind guest mode.
package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/templui/goalboard/internal/config"
)

var ErrNotFound = errors.New("object not found")

// Storage is a flat key-value store. Keys are slash separated paths;
// callers scope them per owner.
type Storage interface {
	// Save stores data at the given path, replacing any previous value
	Save(path string, data io.Reader) error

	// Load returns the data at path or ErrNotFound
	Load(path string) ([]byte, error)

	// Delete removes the path; deleting a missing path is not an error
	Delete(path string) error
}

// New creates the store selected by GUEST_STORE.
func New(c *cfg.Config) (Storage, error) {
	switch c.GuestStore {
	case cfg.GuestStoreS3:
		slog.Info("initializing S3 guest storage",
			"bucket", c.S3Bucket,
			"region", c.S3Region,
			"endpoint", c.S3Endpoint,
		)
		return NewS3Storage(S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	case cfg.GuestStoreMemory, "":
		slog.Info("initializing in-memory guest storage")
		return NewMemoryStorage(), nil
	}
	return nil, fmt.Errorf("unknown guest store %q", c.GuestStore)
}
