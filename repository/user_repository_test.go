package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAddToWishlist(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first add succeeds", func(mt *mtest.T) {
		repo := &MongoUserRepository{col: mt.Coll}
		userID := primitive.NewObjectID()
		productID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "hong-kong-db.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: userID},
				{Key: "wishlist", Value: bson.A{productID}},
			}),
		)

		wishlist, err := repo.AddToWishlist(context.Background(), userID, productID)
		assert.NoError(mt, err)
		assert.Equal(mt, []primitive.ObjectID{productID}, wishlist)

		// The update filter must exclude users already holding the
		// product, so the timestamp write cannot mask a no-op add.
		evt := mt.GetStartedEvent()
		assert.Equal(mt, "update", evt.CommandName)
		assert.Contains(mt, evt.Command.String(), "$ne")
	})

	mt.Run("duplicate add reports the conflict", func(mt *mtest.T) {
		repo := &MongoUserRepository{col: mt.Coll}
		userID := primitive.NewObjectID()
		productID := primitive.NewObjectID()

		// The guarded filter matches nothing on a duplicate even
		// though updatedAt would have been written.
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, "hong-kong-db.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: userID},
				{Key: "wishlist", Value: bson.A{productID}},
			}),
		)

		wishlist, err := repo.AddToWishlist(context.Background(), userID, productID)
		assert.ErrorIs(mt, err, ErrAlreadyInWishlist)
		assert.Equal(mt, []primitive.ObjectID{productID}, wishlist)
	})

	mt.Run("missing user surfaces not found", func(mt *mtest.T) {
		repo := &MongoUserRepository{col: mt.Coll}

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, "hong-kong-db.users", mtest.FirstBatch),
		)

		_, err := repo.AddToWishlist(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
