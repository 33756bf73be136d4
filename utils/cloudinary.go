package utils

import (
	"sevasetu/config"
	"sevasetu/services/storage"

	"go.uber.org/zap"
)

// Cloudinary builds the media storage service from the CLOUDINARY_* settings.
func Cloudinary(logger *zap.Logger) (*storage.CloudinaryStorage, error) {
	return storage.NewCloudinaryStorage(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
		logger,
	)
}
