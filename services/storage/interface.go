package storage

import (
	"context"
	"io"
)

// StorageService defines the interface for vendor photo storage.
type StorageService interface {
	UploadPhoto(ctx context.Context, file io.Reader, destFolder string) (string, error)
	DeletePhoto(ctx context.Context, publicID string) error
}
