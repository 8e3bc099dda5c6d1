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

// ProductRepository defines the data access surface for the catalog.
type ProductRepository interface {
	List(ctx context.Context, q ListingQuery) ([]models.Product, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.RelatedProduct, error)
	ListByBrand(ctx context.Context, brandID primitive.ObjectID) ([]models.Product, error)
	Related(ctx context.Context, id primitive.ObjectID) ([]models.RelatedProduct, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int64) ([]models.Product, error)
}

// MongoProductRepository implements ProductRepository on MongoDB.
type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection(database.ColProducts)}
}

// List runs a prepared listing query and returns the page of products
// together with the total match count.
func (r *MongoProductRepository) List(ctx context.Context, q ListingQuery) ([]models.Product, int64, error) {
	total, err := r.col.CountDocuments(ctx, q.Filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(q.Sort).
		SetSkip(int64(q.Skip)).
		SetLimit(int64(q.Limit))
	cursor, err := r.col.Find(ctx, q.Filter, opts)
	if err != nil {
		return nil, 0, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *MongoProductRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs returns a trimmed projection of the given products, in no
// particular order. Unknown ids are skipped.
func (r *MongoProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.RelatedProduct, error) {
	if len(ids) == 0 {
		return []models.RelatedProduct{}, nil
	}

	opts := options.Find().SetProjection(bson.M{
		"name":   1,
		"price":  1,
		"images": 1,
		"brand":  1,
		"rating": 1,
	})
	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.RelatedProduct{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) ListByBrand(ctx context.Context, brandID primitive.ObjectID) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.M{"brand": brandID})
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Related returns the trimmed projections of a product's related
// products. The owning product must exist.
func (r *MongoProductRepository) Related(ctx context.Context, id primitive.ObjectID) ([]models.RelatedProduct, error) {
	product, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.FindByIDs(ctx, product.RelatedProducts)
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Product, error) {
	set["updatedAt"] = time.Now().UTC()

	var product models.Product
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoProductRepository) Recent(ctx context.Context, n int64) ([]models.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(n)
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
