package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores catalogue media.
type StorageService interface {
	// UploadImage uploads file (a path, URL or io.Reader) into folder and
	// returns the asset's public id and HTTPS URL.
	UploadImage(ctx context.Context, file interface{}, folder string) (*UploadedAsset, error)
	DeleteFile(ctx context.Context, publicID string) error
}

type UploadedAsset struct {
	PublicID  string `json:"publicId"`
	SecureURL string `json:"secureUrl"`
}

// Uploader is the subset of the Cloudinary upload API the service calls.
type Uploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}
