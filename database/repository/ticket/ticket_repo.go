package ticketRepo

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

type TicketRepository interface {
	Insert(ctx context.Context, t *models.SupportTicket) error
	ListAll(ctx context.Context) ([]models.SupportTicket, error)
	UpdateStatus(ctx context.Context, id string, status models.TicketStatus, at time.Time) error
}

type MongoTicketRepo struct {
	coll *mongo.Collection
}

func NewMongoTicketRepo() TicketRepository {
	return &MongoTicketRepo{coll: database.Collection(database.TicketsCollection)}
}

func (r *MongoTicketRepo) Insert(ctx context.Context, t *models.SupportTicket) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}
	return nil
}

func (r *MongoTicketRepo) ListAll(ctx context.Context) ([]models.SupportTicket, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tickets: %w", err)
	}
	defer cursor.Close(ctx)
	tickets := []models.SupportTicket{}
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}
	return tickets, nil
}

func (r *MongoTicketRepo) UpdateStatus(ctx context.Context, id string, status models.TicketStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": at}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("ticket %s: %w", id, database.ErrNotFound)
	}
	return nil
}
