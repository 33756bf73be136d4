package catalog

import (
	"context"
	"errors"
	"strings"

	"sevasetu/database"
	serviceRepo "sevasetu/database/repository/service"
	"sevasetu/models"
	"sevasetu/services/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const imageFolder = "sevasetu/services"

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrStorageUnavailable = errors.New("image storage is not configured")
)

var categoryReplacer = strings.NewReplacer(
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", "\"",
	"\u201d", "\"",
	"\u00a0", " ",
)

// NormalizeCategory folds typographic quotes and non-breaking spaces so
// categories typed in the admin sheet match the ones in links.
func NormalizeCategory(category string) string {
	return strings.TrimSpace(categoryReplacer.Replace(category))
}

type CatalogService interface {
	ListServices(ctx context.Context, category string) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	UploadServiceImage(ctx context.Context, id string, file interface{}) (*models.Service, error)
}

type DefaultCatalogService struct {
	Repo    serviceRepo.ServiceRepository
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewDefaultCatalogService(repo serviceRepo.ServiceRepository, store storage.StorageService, logger *zap.Logger) *DefaultCatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatalogService{Repo: repo, Storage: store, Logger: logger}
}

// ListServices returns the catalogue, narrowed to one category when given.
func (s *DefaultCatalogService) ListServices(ctx context.Context, category string) ([]models.Service, error) {
	all, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	want := NormalizeCategory(category)
	if want == "" {
		return all, nil
	}
	out := []models.Service{}
	for _, svc := range all {
		if strings.EqualFold(NormalizeCategory(svc.Category), want) {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrServiceNotFound
	}
	return svc, err
}

func (s *DefaultCatalogService) UploadServiceImage(ctx context.Context, id string, file interface{}) (*models.Service, error) {
	if s.Storage == nil {
		return nil, ErrStorageUnavailable
	}
	if _, err := s.GetService(ctx, id); err != nil {
		return nil, err
	}
	asset, err := s.Storage.UploadImage(ctx, file, imageFolder)
	if err != nil {
		return nil, err
	}
	update := bson.M{"$set": bson.M{"imageUrl": asset.SecureURL}}
	if err := s.Repo.UpdateWithDocument(ctx, id, update); err != nil {
		return nil, err
	}
	s.Logger.Info("Service image updated", zap.String("serviceId", id), zap.String("publicId", asset.PublicID))
	return s.GetService(ctx, id)
}
