package orderRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"sevasetu/database"
	"sevasetu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoOrderRepo_UpdateStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("updates matched order", func(mt *mtest.T) {
		repo := &MongoOrderRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))

		require.NoError(mt, repo.UpdateStatus(context.Background(), "o1", models.OrderCompleted, time.Now()))
	})

	mt.Run("unknown order", func(mt *mtest.T) {
		repo := &MongoOrderRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.UpdateStatus(context.Background(), "ghost", models.OrderCompleted, time.Now())
		assert.True(mt, errors.Is(err, database.ErrNotFound))
	})
}

func TestMongoOrderRepo_ListAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes items", func(mt *mtest.T) {
		repo := &MongoOrderRepo{coll: mt.Coll}
		doc := bson.D{
			{Key: "id", Value: "o1"},
			{Key: "userId", Value: "u1"},
			{Key: "items", Value: bson.A{bson.D{{Key: "name", Value: "AC Service"}, {Key: "sellPrice", Value: 599.0}}}},
			{Key: "totalAmount", Value: 599.0},
			{Key: "status", Value: "pending"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "sevasetu.orders", mtest.FirstBatch, doc))

		got, err := repo.ListAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, []models.OrderItem{{Name: "AC Service", SellPrice: 599}}, got[0].Items)
		assert.Equal(mt, models.OrderPending, got[0].Status)
	})
}
