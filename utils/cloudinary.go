package utils

import (
	"fmt"

	"apexcare/config"
	"apexcare/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes and returns a Cloudinary-backed StorageService
// from the CLOUDINARY_URL configuration value.
func Cloudinary() (storage.StorageService, error) {
	url := config.AppConfig.CloudinaryURL
	if url == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}

	return storage.NewStorageService(cld), nil
}
