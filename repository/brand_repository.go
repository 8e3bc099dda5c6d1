package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/database"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
)

// BrandRepository defines the data access surface for brands.
type BrandRepository interface {
	All(ctx context.Context) ([]models.Brand, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	FindByName(ctx context.Context, name string) (*models.Brand, error)
	Resolve(ctx context.Context, ref Reference) (*models.Brand, error)
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Brand, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// MongoBrandRepository implements BrandRepository on MongoDB.
type MongoBrandRepository struct {
	col *mongo.Collection
}

func NewMongoBrandRepository(db *mongo.Database) *MongoBrandRepository {
	return &MongoBrandRepository{col: db.Collection(database.ColBrands)}
}

func (r *MongoBrandRepository) All(ctx context.Context) ([]models.Brand, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	brands := []models.Brand{}
	if err := cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *MongoBrandRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *MongoBrandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *MongoBrandRepository) FindByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Resolve looks a brand up by canonical id or by case-insensitive name
// match, depending on how the reference was classified.
func (r *MongoBrandRepository) Resolve(ctx context.Context, ref Reference) (*models.Brand, error) {
	if ref.ByID {
		return r.Get(ctx, ref.ID)
	}

	var brand models.Brand
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(ref.Name), Options: "i"}}
	err := r.col.FindOne(ctx, filter).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *MongoBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	now := time.Now().UTC()
	brand.CreatedAt = now
	brand.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, brand)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	brand.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoBrandRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Brand, error) {
	set["updatedAt"] = time.Now().UTC()

	var brand models.Brand
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&brand)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *MongoBrandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBrandRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
