package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/database"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
)

// LensRepository defines the data access surface for lens types.
type LensRepository interface {
	All(ctx context.Context) ([]models.Lens, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Lens, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Lens, error)
	FindByNames(ctx context.Context, names []string, partial bool) ([]models.Lens, error)
	Create(ctx context.Context, lens *models.Lens) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Lens, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoLensRepository implements LensRepository on MongoDB.
type MongoLensRepository struct {
	col *mongo.Collection
}

func NewMongoLensRepository(db *mongo.Database) *MongoLensRepository {
	return &MongoLensRepository{col: db.Collection(database.ColLenses)}
}

func (r *MongoLensRepository) All(ctx context.Context) ([]models.Lens, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	lenses := []models.Lens{}
	if err := cursor.All(ctx, &lenses); err != nil {
		return nil, err
	}
	return lenses, nil
}

func (r *MongoLensRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Lens, error) {
	var lens models.Lens
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lens)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lens, nil
}

func (r *MongoLensRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Lens, error) {
	if len(ids) == 0 {
		return []models.Lens{}, nil
	}
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	lenses := []models.Lens{}
	if err := cursor.All(ctx, &lenses); err != nil {
		return nil, err
	}
	return lenses, nil
}

// FindByNames matches lens types by name. With partial set, each name is
// treated as a case-insensitive substring, otherwise names must match
// exactly.
func (r *MongoLensRepository) FindByNames(ctx context.Context, names []string, partial bool) ([]models.Lens, error) {
	if len(names) == 0 {
		return []models.Lens{}, nil
	}

	var filter bson.M
	if partial {
		patterns := make([]primitive.Regex, 0, len(names))
		for _, name := range names {
			patterns = append(patterns, primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"})
		}
		filter = bson.M{"name": bson.M{"$in": patterns}}
	} else {
		filter = bson.M{"name": bson.M{"$in": names}}
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	lenses := []models.Lens{}
	if err := cursor.All(ctx, &lenses); err != nil {
		return nil, err
	}
	return lenses, nil
}

func (r *MongoLensRepository) Create(ctx context.Context, lens *models.Lens) error {
	res, err := r.col.InsertOne(ctx, lens)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	lens.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoLensRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Lens, error) {
	var lens models.Lens
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&lens)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lens, nil
}

func (r *MongoLensRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
