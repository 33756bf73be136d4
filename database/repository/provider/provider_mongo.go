package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"sevasetu/database"
	"sevasetu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	repo := &MongoProviderRepo{coll: database.Collection(database.ProvidersCollection)}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("providerRepo: index creation failed: %v\n", err)
	}
	return repo
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("provider %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) List(ctx context.Context, f models.ProviderFilter) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.District != "" {
		filter["district"] = f.District
	}
	if f.Available != nil {
		filter["available"] = *f.Available
	}
	if f.Search != "" {
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"phone": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	// Newest registrations first, as on the admin provider screen.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "name", Value: 1}})
	return r.find(ctx, filter, opts)
}

// FindEligible applies the equality conjunction used by the matcher. No sort is
// requested, so candidates arrive in the store's natural order.
func (r *MongoProviderRepo) FindEligible(ctx context.Context, category, district string) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	filter := bson.M{
		"category":  category,
		"district":  district,
		"verified":  true,
		"available": true,
	}
	providers, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible providers for %s/%s: %w", category, district, err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	return r.UpdateWithDocument(ctx, id, bson.M{"$set": bson.M{"available": available}})
}

func (r *MongoProviderRepo) ClaimAvailable(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	filter := bson.M{"id": id, "available": true}
	update := bson.M{"$set": bson.M{"available": false}}
	var claimed models.Provider
	err := r.coll.FindOneAndUpdate(ctx, filter, update).Decode(&claimed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to claim provider %s: %w", id, err)
	}
	return true, nil
}

func (r *MongoProviderRepo) UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoProviderRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)
	providers := []models.Provider{}
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("provider cursor: %w", err)
	}
	return providers, nil
}
