package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/database"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
)

// InsuranceRepository defines the data access surface for insurance logos.
type InsuranceRepository interface {
	All(ctx context.Context) ([]models.InsuranceLogo, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.InsuranceLogo, error)
	Create(ctx context.Context, logo *models.InsuranceLogo) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.InsuranceLogo, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoInsuranceRepository implements InsuranceRepository on MongoDB.
type MongoInsuranceRepository struct {
	col *mongo.Collection
}

func NewMongoInsuranceRepository(db *mongo.Database) *MongoInsuranceRepository {
	return &MongoInsuranceRepository{col: db.Collection(database.ColInsuranceLogos)}
}

func (r *MongoInsuranceRepository) All(ctx context.Context) ([]models.InsuranceLogo, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	logos := []models.InsuranceLogo{}
	if err := cursor.All(ctx, &logos); err != nil {
		return nil, err
	}
	return logos, nil
}

func (r *MongoInsuranceRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.InsuranceLogo, error) {
	var logo models.InsuranceLogo
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&logo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

func (r *MongoInsuranceRepository) Create(ctx context.Context, logo *models.InsuranceLogo) error {
	now := time.Now().UTC()
	logo.CreatedAt = now
	logo.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, logo)
	if err != nil {
		return err
	}
	logo.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoInsuranceRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.InsuranceLogo, error) {
	set["updatedAt"] = time.Now().UTC()

	var logo models.InsuranceLogo
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&logo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &logo, nil
}

func (r *MongoInsuranceRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
