package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	ColUsers          = "users"
	ColProducts       = "products"
	ColBrands         = "brands"
	ColLenses         = "lenses"
	ColInsuranceLogos = "insurancelogos"
	ColOrders         = "orders"
	ColAppointments   = "appointments"
	ColClients        = "clients"
	ColContacts       = "contacts"
)

// Connect establishes the MongoDB connection and pings the primary.
// A failure here is fatal at boot.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(dbName), nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the query paths rely on. The compound
// unique index on appointments is the duplicate-slot guard: the insert's
// duplicate-key error is the single source of truth, there is no advisory
// pre-check.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		ColUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		ColBrands: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		ColProducts: {
			{Keys: bson.D{{Key: "brand", Value: 1}}},
			{Keys: bson.D{{Key: "price", Value: 1}}},
			{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		},
		ColAppointments: {
			{
				Keys: bson.D{
					{Key: "user", Value: 1},
					{Key: "serviceType", Value: 1},
					{Key: "date", Value: 1},
					{Key: "time", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
		ColOrders: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		ColContacts: {
			{Keys: bson.D{{Key: "isRead", Value: 1}}},
		},
	}

	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	return nil
}
