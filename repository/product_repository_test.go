package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestProductList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("skip and limit forwarded to the find", func(mt *mtest.T) {
		repo := &MongoProductRepository{col: mt.Coll}
		q := BuildListingQuery(ListingParams{Page: "3", Limit: "5"}, ResolvedRefs{})

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "hong-kong-db.products", mtest.FirstBatch, bson.D{
				{Key: "n", Value: 12},
			}),
			mtest.CreateCursorResponse(0, "hong-kong-db.products", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "name", Value: "Round Frame"},
			}),
		)

		products, total, err := repo.List(context.Background(), q)
		assert.NoError(mt, err)
		assert.Equal(mt, int64(12), total)
		assert.Len(mt, products, 1)

		count := mt.GetStartedEvent()
		assert.Equal(mt, "aggregate", count.CommandName)

		find := mt.GetStartedEvent()
		assert.Equal(mt, "find", find.CommandName)
		assert.Equal(mt, int64(10), find.Command.Lookup("skip").Int64())
		assert.Equal(mt, int64(5), find.Command.Lookup("limit").Int64())
	})
}
