package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores and serves uploaded medical reports.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
