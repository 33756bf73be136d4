package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"sevasetu/database"
	"sevasetu/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackRepository interface {
	Insert(ctx context.Context, f *models.Feedback) error
	ListAll(ctx context.Context) ([]models.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]models.Feedback, error)
	ListByBookingIDs(ctx context.Context, bookingIDs []string) ([]models.Feedback, error)
}

type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

func NewMongoFeedbackRepo() FeedbackRepository {
	repo := &MongoFeedbackRepo{coll: database.Collection(database.FeedbackCollection)}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("feedbackRepo: index creation failed: %v\n", err)
	}
	return repo
}

func (r *MongoFeedbackRepo) Insert(ctx context.Context, f *models.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *MongoFeedbackRepo) ListAll(ctx context.Context) ([]models.Feedback, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoFeedbackRepo) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	return r.list(ctx, bson.M{"userId": userID})
}

func (r *MongoFeedbackRepo) ListByBookingIDs(ctx context.Context, bookingIDs []string) ([]models.Feedback, error) {
	if len(bookingIDs) == 0 {
		return []models.Feedback{}, nil
	}
	return r.list(ctx, bson.M{"bookingId": bson.M{"$in": bookingIDs}})
}

func (r *MongoFeedbackRepo) list(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)
	items := []models.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode feedback: %w", err)
	}
	return items, nil
}

func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
