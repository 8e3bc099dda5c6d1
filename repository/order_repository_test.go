package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
)

func TestUserOrdersPipeline(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("products joined before search match", func(t *testing.T) {
		pipeline := userOrdersPipeline(userID, "aviator", "")
		assert.Len(t, pipeline, 4)
		assert.Equal(t, "$match", pipeline[0][0].Key)
		assert.Equal(t, "$lookup", pipeline[1][0].Key)
		assert.Equal(t, "$match", pipeline[2][0].Key)
		assert.Equal(t, "$sort", pipeline[3][0].Key)

		filter := pipeline[2][0].Value.(bson.M)
		or := filter["$or"].([]bson.M)
		assert.Equal(t, primitive.Regex{Pattern: "aviator", Options: "i"}, or[0]["productDocs.name"])
	})

	t.Run("no search or status skips the second match", func(t *testing.T) {
		pipeline := userOrdersPipeline(userID, "", "")
		assert.Len(t, pipeline, 3)
	})
}

func TestUserOrderFilter(t *testing.T) {
	t.Run("unrecognized status ignored", func(t *testing.T) {
		filter := userOrderFilter("", "teleported")
		assert.Empty(t, filter)
	})

	t.Run("recognized status applied", func(t *testing.T) {
		filter := userOrderFilter("", models.OrderShipped)
		assert.Equal(t, models.OrderShipped, filter["status"])
	})

	t.Run("search adds id and total clauses when parseable", func(t *testing.T) {
		id := primitive.NewObjectID()
		or := userOrderFilter(id.Hex(), "")["$or"].([]bson.M)
		assert.Contains(t, or, bson.M{"_id": id})

		or = userOrderFilter("19.99", "")["$or"].([]bson.M)
		assert.Contains(t, or, bson.M{"total": 19.99})
	})
}

func TestAdminOrderMatch(t *testing.T) {
	t.Run("unrecognized status ignored", func(t *testing.T) {
		assert.Empty(t, adminOrderMatch("", "bogus"))
	})

	t.Run("recognized status applied", func(t *testing.T) {
		match := adminOrderMatch("", models.OrderDelivered)
		assert.Equal(t, models.OrderDelivered, match["status"])
	})

	t.Run("search covers user fields and status", func(t *testing.T) {
		clauses := orderSearchClauses("ship")
		pattern := primitive.Regex{Pattern: "ship", Options: "i"}
		assert.Contains(t, clauses, bson.M{"userDoc.name": pattern})
		assert.Contains(t, clauses, bson.M{"userDoc.email": pattern})
		assert.Contains(t, clauses, bson.M{"status": pattern})
	})
}

func TestJoinItems(t *testing.T) {
	productID := primitive.NewObjectID()
	goneID := primitive.NewObjectID()
	items := []models.OrderItem{
		{ProductID: productID, Quantity: 2, PriceAtAddTime: 50},
		{ProductID: goneID, Quantity: 1, PriceAtAddTime: 10},
	}
	products := []models.Product{{ID: productID, Name: "Round Frame"}}

	rows := joinItems(items, products)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Round Frame", rows[0].Product.Name)
	assert.Nil(t, rows[1].Product)
}
