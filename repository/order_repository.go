package repository

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/database"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/models"
)

// OrderRepository defines the data access surface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	UserOrders(ctx context.Context, userID primitive.ObjectID, search, status string) ([]models.UserOrderRow, error)
	AdminList(ctx context.Context, page, limit int, search, status string) ([]models.AdminOrderRow, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// MongoOrderRepository implements OrderRepository on MongoDB.
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection(database.ColOrders)}
}

// orderAggRow is the decode target for order report pipelines. The
// joined user is nil when the owning user record no longer exists.
type orderAggRow struct {
	ID        primitive.ObjectID `bson:"_id"`
	User      *models.User       `bson:"userDoc"`
	Items     []models.OrderItem `bson:"items"`
	Total     float64            `bson:"total"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
	Products  []models.Product   `bson:"productDocs"`
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoOrderRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// orderSearchClauses builds the $or disjunction for a free-text order
// search: owning user name or email substring, status substring, exact
// order id, or exact total.
func orderSearchClauses(search string) []bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	clauses := []bson.M{
		{"userDoc.name": pattern},
		{"userDoc.email": pattern},
		{"status": pattern},
	}
	if id, err := primitive.ObjectIDFromHex(search); err == nil {
		clauses = append(clauses, bson.M{"_id": id})
	}
	if total, err := strconv.ParseFloat(search, 64); err == nil {
		clauses = append(clauses, bson.M{"total": total})
	}
	return clauses
}

func productLookupStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         database.ColProducts,
		"localField":   "items.productId",
		"foreignField": "_id",
		"as":           "productDocs",
	}}}
}

// joinItems zips order lines with their looked-up product documents.
// Lines whose product has been deleted keep a nil product.
func joinItems(items []models.OrderItem, products []models.Product) []models.OrderItemRow {
	byID := make(map[primitive.ObjectID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	rows := make([]models.OrderItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, models.OrderItemRow{
			Product:        byID[item.ProductID],
			Quantity:       item.Quantity,
			PriceAtAddTime: item.PriceAtAddTime,
		})
	}
	return rows
}

// userOrderFilter builds the post-lookup filter for a user's order
// listing. An unrecognized status is ignored rather than applied, and
// the free-text search covers joined product names.
func userOrderFilter(search, status string) bson.M {
	filter := bson.M{}
	if models.ValidOrderStatus(status) {
		filter["status"] = status
	}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		or := []bson.M{
			{"productDocs.name": pattern},
			{"status": pattern},
		}
		if id, err := primitive.ObjectIDFromHex(search); err == nil {
			or = append(or, bson.M{"_id": id})
		}
		if total, err := strconv.ParseFloat(search, 64); err == nil {
			or = append(or, bson.M{"total": total})
		}
		filter["$or"] = or
	}
	return filter
}

// userOrdersPipeline joins products before the search match so the
// search can reach product names.
func userOrdersPipeline(userID primitive.ObjectID, search, status string) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user": userID}}},
		productLookupStage(),
	}
	if filter := userOrderFilter(search, status); len(filter) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: filter}})
	}
	return append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})
}

func (r *MongoOrderRepository) UserOrders(ctx context.Context, userID primitive.ObjectID, search, status string) ([]models.UserOrderRow, error) {
	pipeline := userOrdersPipeline(userID, search, status)
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	raw := []orderAggRow{}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	rows := make([]models.UserOrderRow, 0, len(raw))
	for _, agg := range raw {
		rows = append(rows, models.UserOrderRow{
			ID:        agg.ID,
			Status:    agg.Status,
			Total:     agg.Total,
			Items:     joinItems(agg.Items, agg.Products),
			CreatedAt: agg.CreatedAt,
			UpdatedAt: agg.UpdatedAt,
		})
	}
	return rows, nil
}

// adminOrderMatch builds the post-join match for the admin order
// report. An unrecognized status is ignored rather than applied.
func adminOrderMatch(search, status string) bson.M {
	match := bson.M{}
	if models.ValidOrderStatus(status) {
		match["status"] = status
	}
	if search != "" {
		match["$or"] = orderSearchClauses(search)
	}
	return match
}

// AdminList returns one reshaped page of the order report with the
// owning user joined in, plus the total match count.
func (r *MongoOrderRepository) AdminList(ctx context.Context, page, limit int, search, status string) ([]models.AdminOrderRow, int64, error) {
	match := adminOrderMatch(search, status)

	base := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         database.ColUsers,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "userDoc",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$userDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$match", Value: match}},
	}

	countPipeline := append(mongo.Pipeline{}, base...)
	countPipeline = append(countPipeline, bson.D{{Key: "$count", Value: "total"}})
	countCursor, err := r.col.Aggregate(ctx, countPipeline)
	if err != nil {
		return nil, 0, err
	}
	var counts []struct {
		Total int64 `bson:"total"`
	}
	if err := countCursor.All(ctx, &counts); err != nil {
		return nil, 0, err
	}
	var total int64
	if len(counts) > 0 {
		total = counts[0].Total
	}

	skip := int64(page-1) * int64(limit)
	pipeline := append(mongo.Pipeline{}, base...)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: int64(limit)}},
		productLookupStage(),
	)
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	raw := []orderAggRow{}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, 0, err
	}

	rows := make([]models.AdminOrderRow, 0, len(raw))
	for _, agg := range raw {
		var user *models.OrderUserRow
		if agg.User != nil {
			user = &models.OrderUserRow{
				ID:    agg.User.ID,
				Name:  agg.User.Name,
				Email: agg.User.Email,
				Role:  agg.User.Role,
				Image: agg.User.Image,
			}
		}
		rows = append(rows, models.AdminOrderRow{
			ID:          agg.ID.Hex(),
			User:        user,
			Items:       joinItems(agg.Items, agg.Products),
			TotalAmount: agg.Total,
			Status:      agg.Status,
			CreatedAt:   agg.CreatedAt,
			UpdatedAt:   agg.UpdatedAt,
		})
	}
	return rows, total, nil
}

func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.col.CountDocuments(ctx, filter)
}
