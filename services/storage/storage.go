package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

type CloudinaryStorage struct {
	upload Uploader
	logger *zap.Logger
}

// NewCloudinaryStorage builds the storage service from account credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return NewStorageService(&cld.Upload, logger), nil
}

func NewStorageService(upload Uploader, logger *zap.Logger) *CloudinaryStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CloudinaryStorage{upload: upload, logger: logger}
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, file interface{}, folder string) (*UploadedAsset, error) {
	result, err := s.upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned")
	}
	s.logger.Info("Image uploaded", zap.String("publicId", result.PublicID), zap.String("folder", folder))
	return &UploadedAsset{PublicID: result.PublicID, SecureURL: result.SecureURL}, nil
}

func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
