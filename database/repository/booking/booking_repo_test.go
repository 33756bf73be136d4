package bookingRepo

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

const ns = "sevasetu.bookings"

func TestMongoBookingRepo_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.Insert(context.Background(), &models.Booking{ID: "b1", Status: models.BookingPending, CreatedAt: time.Now()})
		require.NoError(mt, err)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Insert(context.Background(), &models.Booking{ID: "b1"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "failed to insert booking")
	})
}

func TestMongoBookingRepo_ReadsNormalize(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list mixes nested and flattened documents", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		nested := bson.D{
			{Key: "id", Value: "b1"},
			{Key: "userId", Value: "u1"},
			{Key: "services", Value: bson.A{bson.D{
				{Key: "category", Value: "Pest Control"},
				{Key: "subService", Value: "Termite Control"},
				{Key: "price", Value: 999.0},
			}}},
			{Key: "totalAmount", Value: 999.0},
			{Key: "status", Value: "assigned"},
			{Key: "assignedProvider", Value: bson.D{{Key: "id", Value: "p1"}}},
		}
		flattened := bson.D{
			{Key: "id", Value: "b0"},
			{Key: "userId", Value: "u1"},
			{Key: "category", Value: "Cleaning"},
			{Key: "subService", Value: "Kitchen Cleaning"},
			{Key: "price", Value: 1499.0},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, nested, flattened))

		got, err := repo.ListByUser(context.Background(), "u1")
		require.NoError(mt, err)
		require.Len(mt, got, 2)

		assert.Equal(mt, models.BookingAssigned, got[0].Status)
		require.NotNil(mt, got[0].AssignedProvider)
		assert.Equal(mt, "p1", got[0].AssignedProvider.ID)

		assert.Equal(mt, "Cleaning", got[1].PrimaryCategory())
		assert.Equal(mt, "Kitchen Cleaning", got[1].PrimaryService())
		assert.Equal(mt, 1499.0, got[1].TotalAmount)
		assert.Equal(mt, models.BookingPending, got[1].Status)
		assert.Equal(mt, models.BookingSchemaVersion, got[1].SchemaVersion)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := &MongoBookingRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "ghost")
		assert.True(mt, errors.Is(err, database.ErrNotFound))
	})
}
