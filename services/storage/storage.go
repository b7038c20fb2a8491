package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/asset"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

// UploadFile uploads a file to Cloudinary into the specified folder and returns the permanent identifier.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("StorageServiceImpl: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}

// getAsset returns an asset instance based on the resource type.
func (s *StorageServiceImpl) getAsset(resourceType, publicID string) (*asset.Asset, error) {
	switch resourceType {
	case "image":
		return s.cld.Image(publicID)
	case "video":
		return s.cld.Video(publicID)
	default:
		return s.cld.Media(publicID)
	}
}

// GetDownloadURL constructs a public URL for a file based on its resource type.
func (s *StorageServiceImpl) GetDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	a, err := s.getAsset(resourceType, publicID)
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get asset: %w", err)
	}
	url, err := a.String()
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to get URL string: %w", err)
	}
	return url, nil
}
