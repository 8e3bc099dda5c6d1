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

// UserRepository defines the data access surface for users, including
// their embedded cart and wishlist.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)

	AddCartItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) ([]models.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID primitive.ObjectID, quantity int) ([]models.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID primitive.ObjectID) ([]models.CartItem, error)

	AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error)
	RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error)

	CountByRole(ctx context.Context, role string) (int64, error)
	RecentByRole(ctx context.Context, role string, n int64) ([]models.User, error)
}

// MongoUserRepository implements UserRepository on MongoDB.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection(database.ColUsers)}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Cart == nil {
		user.Cart = []models.CartItem{}
	}
	if user.Wishlist == nil {
		user.Wishlist = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	set["updatedAt"] = time.Now().UTC()

	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateKey
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AddCartItem bumps the quantity of an existing line for the same
// product, otherwise appends a new line. Each step is a single atomic
// update so concurrent writers cannot clobber unrelated lines.
func (r *MongoUserRepository) AddCartItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) ([]models.CartItem, error) {
	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID, "cart.productId": item.ProductID},
		bson.M{
			"$inc": bson.M{"cart.$.quantity": item.Quantity},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == nil {
		return user.Cart, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$push": bson.M{"cart": item},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

func (r *MongoUserRepository) UpdateCartItem(ctx context.Context, userID, itemID primitive.ObjectID, quantity int) ([]models.CartItem, error) {
	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID, "cart._id": itemID},
		bson.M{"$set": bson.M{
			"cart.$.quantity": quantity,
			"updatedAt":       time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// RemoveCartItem pulls the line with the given id. Removing an id that
// is not in the cart is not an error; the cart is returned unchanged.
func (r *MongoUserRepository) RemoveCartItem(ctx context.Context, userID, itemID primitive.ObjectID) ([]models.CartItem, error) {
	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$pull": bson.M{"cart": bson.M{"_id": itemID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user.Cart, nil
}

// AddToWishlist adds the product in a single atomic update. The filter
// excludes users that already hold the product, so a duplicate add
// matches nothing; the timestamp write cannot mask it.
func (r *MongoUserRepository) AddToWishlist(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": userID, "wishlist": bson.M{"$ne": productID}},
		bson.M{
			"$addToSet": bson.M{"wishlist": productID},
			"$set":      bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return nil, err
	}

	user, err := r.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return user.Wishlist, ErrAlreadyInWishlist
	}
	return user.Wishlist, nil
}

func (r *MongoUserRepository) RemoveFromWishlist(ctx context.Context, userID, productID primitive.ObjectID) ([]primitive.ObjectID, error) {
	var user models.User
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$pull": bson.M{"wishlist": productID},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user.Wishlist, nil
}

func (r *MongoUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"role": role})
}

func (r *MongoUserRepository) RecentByRole(ctx context.Context, role string, n int64) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(n).
		SetProjection(bson.M{"password": 0})
	cursor, err := r.col.Find(ctx, bson.M{"role": role}, opts)
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
