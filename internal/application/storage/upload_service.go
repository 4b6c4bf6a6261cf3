package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// UploadURLTTL is how long a presigned upload URL stays valid
const UploadURLTTL = 60 * time.Second

// ObjectStorage issues presigned upload URLs for direct client uploads
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
}

// UploadInput identifies the object a client wants to upload
type UploadInput struct {
	FileName string
	Category string
	FileType string
}

// UploadURL is a short-lived presigned PUT target
type UploadURL struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// UploadService hands out presigned URLs so media bytes never pass
// through the API server.
type UploadService struct {
	storage ObjectStorage
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorage) *UploadService {
	return &UploadService{storage: storage}
}

// GeneratePresignedURL validates the upload parameters and returns a
// presigned PUT URL. Keys are grouped by media kind and category, for
// example images/electronics/phone.jpg for an image/jpeg upload.
func (s *UploadService) GeneratePresignedURL(ctx context.Context, input UploadInput) (*UploadURL, error) {
	fileName := strings.TrimSpace(input.FileName)
	category := strings.TrimSpace(input.Category)
	fileType := strings.TrimSpace(input.FileType)
	if fileName == "" || category == "" || fileType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "fileName, category and fileType are required")
	}
	if strings.Contains(fileName, "/") || strings.Contains(category, "/") ||
		strings.Contains(fileName, "..") || strings.Contains(category, "..") {
		return nil, shared.NewDomainError("INVALID_INPUT", "fileName and category must not contain path separators")
	}

	kind, _, found := strings.Cut(fileType, "/")
	if !found || kind == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "fileType must be a MIME type such as image/png")
	}

	key := fmt.Sprintf("%ss/%s/%s", kind, category, fileName)
	url, err := s.storage.PresignUpload(ctx, key, fileType, UploadURLTTL)
	if err != nil {
		return nil, err
	}
	return &UploadURL{URL: url, Key: key}, nil
}
