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

// ledger writes retry a bounded number of times when the version token
// moved under them before giving up with ErrConflict.
const ledgerWriteRetries = 3

// ClientRepository defines the data access surface for the in-store
// client ledger.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	List(ctx context.Context, page, limit int, search, sortBy, sortOrder string) ([]models.Client, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateClientRequest) (*models.Client, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddPurchase(ctx context.Context, id primitive.ObjectID, purchase models.Purchase) (*models.Client, error)
	RemovePurchase(ctx context.Context, id primitive.ObjectID, index int) (*models.Client, error)
}

// MongoClientRepository implements ClientRepository on MongoDB.
type MongoClientRepository struct {
	col *mongo.Collection
}

func NewMongoClientRepository(db *mongo.Database) *MongoClientRepository {
	return &MongoClientRepository{col: db.Collection(database.ColClients)}
}

func (r *MongoClientRepository) Create(ctx context.Context, client *models.Client) error {
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now
	client.Version = 0
	client.Purchases, client.TotalPurchases = models.NormalizePurchases(client.Purchases)

	res, err := r.col.InsertOne(ctx, client)
	if err != nil {
		return err
	}
	client.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

var clientSortFields = map[string]string{
	"name":           "name",
	"createdAt":      "createdAt",
	"totalPurchases": "totalPurchases",
}

func (r *MongoClientRepository) List(ctx context.Context, page, limit int, search, sortBy, sortOrder string) ([]models.Client, int64, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": pattern},
			{"phone": pattern},
			{"email": pattern},
		}
	}

	field, ok := clientSortFields[sortBy]
	if !ok {
		field = "createdAt"
	}
	dir := -1
	if sortOrder == "asc" {
		dir = 1
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: dir}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	clients := []models.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *MongoClientRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Update applies partial field updates. When the request replaces the
// purchase ledger the write goes through the versioned ledger path so
// a concurrent ledger writer cannot be silently overwritten.
func (r *MongoClientRepository) Update(ctx context.Context, id primitive.ObjectID, req models.UpdateClientRequest) (*models.Client, error) {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.Address != "" {
		set["address"] = req.Address
	}

	if req.Purchases != nil {
		return r.writeLedger(ctx, id, set, func([]models.Purchase) ([]models.Purchase, error) {
			return *req.Purchases, nil
		})
	}

	set["updatedAt"] = time.Now().UTC()
	var client models.Client
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *MongoClientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoClientRepository) AddPurchase(ctx context.Context, id primitive.ObjectID, purchase models.Purchase) (*models.Client, error) {
	return r.writeLedger(ctx, id, bson.M{}, func(current []models.Purchase) ([]models.Purchase, error) {
		return append(current, purchase), nil
	})
}

func (r *MongoClientRepository) RemovePurchase(ctx context.Context, id primitive.ObjectID, index int) (*models.Client, error) {
	return r.writeLedger(ctx, id, bson.M{}, func(current []models.Purchase) ([]models.Purchase, error) {
		if index < 0 || index >= len(current) {
			return nil, ErrIndexOutOfRange
		}
		next := make([]models.Purchase, 0, len(current)-1)
		next = append(next, current[:index]...)
		next = append(next, current[index+1:]...)
		return next, nil
	})
}

// writeLedger performs a compare-and-swap ledger mutation: read the
// client, transform its ledger, then write guarded on the version token
// read. A matched count of zero means another writer moved the version;
// the transform is retried against the fresh document.
func (r *MongoClientRepository) writeLedger(ctx context.Context, id primitive.ObjectID, extraSet bson.M, transform func([]models.Purchase) ([]models.Purchase, error)) (*models.Client, error) {
	for attempt := 0; attempt < ledgerWriteRetries; attempt++ {
		client, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		next, err := transform(client.Purchases)
		if err != nil {
			return nil, err
		}
		purchases, total := models.NormalizePurchases(next)

		set := bson.M{
			"purchases":      purchases,
			"totalPurchases": total,
			"updatedAt":      time.Now().UTC(),
		}
		for k, v := range extraSet {
			set[k] = v
		}

		res, err := r.col.UpdateOne(
			ctx,
			bson.M{"_id": id, "version": client.Version},
			bson.M{"$set": set, "$inc": bson.M{"version": 1}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 1 {
			client.Purchases = purchases
			client.TotalPurchases = total
			client.Version++
			return client, nil
		}
	}
	return nil, ErrConflict
}
