package orderRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sevasetu/database"
	"sevasetu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	Insert(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	// UpdateStatus overwrites the status field. Last write wins.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, at time.Time) error
}

type MongoOrderRepo struct {
	coll *mongo.Collection
}

func NewMongoOrderRepo() OrderRepository {
	repo := &MongoOrderRepo{coll: database.Collection(database.OrdersCollection)}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("orderRepo: index creation failed: %v\n", err)
	}
	return repo
}

func (r *MongoOrderRepo) Insert(ctx context.Context, o *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *MongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var o models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return &o, nil
}

func (r *MongoOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *MongoOrderRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoOrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": at}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoOrderRepo) list(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	defer cursor.Close(ctx)
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
