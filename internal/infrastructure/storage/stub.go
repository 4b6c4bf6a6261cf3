package storage

import (
	"context"
	"errors"
	"time"

	storageapp "github.com/storefront/backend/internal/application/storage"
)

// StubObjectStorage is a placeholder implementation of the upload port.
// Use it in development when no S3 bucket is configured.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated upload URLs.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
	}
}

var _ storageapp.ObjectStorage = (*StubObjectStorage)(nil)

// PresignUpload generates a stub upload URL that is never actually signed
func (s *StubObjectStorage) PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	expiresAt := time.Now().Add(expires)
	return s.BaseURL + "/upload/" + key + "?expires=" + expiresAt.Format(time.RFC3339), nil
}
