package providerRepo

import (
	"context"

	"sevasetu/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// List returns providers matching the admin filter.
	List(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error)
	// FindEligible returns verified, available providers for a category and district
	// in the store's natural order.
	FindEligible(ctx context.Context, category, district string) ([]models.Provider, error)
	// SetAvailability overwrites the available flag unconditionally.
	SetAvailability(ctx context.Context, id string, available bool) error
	// ClaimAvailable flips available from true to false and reports whether this caller won.
	ClaimAvailable(ctx context.Context, id string) (bool, error)
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error
}
