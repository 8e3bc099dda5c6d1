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

// ContactRepository defines the data access surface for contact threads.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context, page, limit int, search string) ([]models.Contact, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	AddReply(ctx context.Context, id primitive.ObjectID, reply models.Reply) (*models.Contact, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	UnreadCount(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoContactRepository implements ContactRepository on MongoDB.
type MongoContactRepository struct {
	col *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{col: db.Collection(database.ColContacts)}
}

func (r *MongoContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	now := time.Now().UTC()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	if contact.Replies == nil {
		contact.Replies = []models.Reply{}
	}

	res, err := r.col.InsertOne(ctx, contact)
	if err != nil {
		return err
	}
	contact.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoContactRepository) List(ctx context.Context, page, limit int, search string) ([]models.Contact, int64, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
			{"email": pattern},
			{"message": pattern},
		}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	contacts := []models.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *MongoContactRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// AddReply appends to the thread and marks it read in one atomic update.
func (r *MongoContactRepository) AddReply(ctx context.Context, id primitive.ObjectID, reply models.Reply) (*models.Contact, error) {
	var contact models.Contact
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"replies": reply},
			"$set":  bson.M{"isRead": true, "updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *MongoContactRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	var contact models.Contact
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&contact)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *MongoContactRepository) UnreadCount(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"isRead": false})
}

func (r *MongoContactRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
