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

// AppointmentRepository defines the data access surface for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error)
	UserList(ctx context.Context, userID primitive.ObjectID, search string) ([]models.Appointment, error)
	AdminList(ctx context.Context, page, limit int, search string) ([]models.AdminAppointmentRow, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Appointment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoAppointmentRepository implements AppointmentRepository on MongoDB.
type MongoAppointmentRepository struct {
	col *mongo.Collection
}

func NewMongoAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{col: db.Collection(database.ColAppointments)}
}

// Create inserts the appointment. The compound unique index on
// (user, serviceType, date, time) is the sole arbiter of slot
// collisions; a duplicate key maps to ErrDuplicateSlot.
func (r *MongoAppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, appt)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlot
	}
	if err != nil {
		return err
	}
	appt.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MongoAppointmentRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// userAppointmentFilter builds the filter for a user's own bookings.
// The search covers the contact fields and the service type.
func userAppointmentFilter(userID primitive.ObjectID, search string) bson.M {
	filter := bson.M{"user": userID}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
			{"email": pattern},
			{"serviceType": pattern},
		}
	}
	return filter
}

func (r *MongoAppointmentRepository) UserList(ctx context.Context, userID primitive.ObjectID, search string) ([]models.Appointment, error) {
	filter := userAppointmentFilter(userID, search)

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// appointmentAggRow is the decode target for the admin report pipeline.
type appointmentAggRow struct {
	models.Appointment `bson:",inline"`
	User               *models.User `bson:"userDoc"`
}

// AdminList returns one reshaped page of the appointment report with
// the booking user joined in, plus the total match count.
func (r *MongoAppointmentRepository) AdminList(ctx context.Context, page, limit int, search string) ([]models.AdminAppointmentRow, int64, error) {
	match := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		match["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
			{"email": pattern},
			{"serviceType": pattern},
			{"status": pattern},
			{"userDoc.name": pattern},
			{"userDoc.email": pattern},
		}
	}

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
	)
	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	raw := []appointmentAggRow{}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, 0, err
	}

	rows := make([]models.AdminAppointmentRow, 0, len(raw))
	for _, agg := range raw {
		var user *models.AppointmentUserRow
		if agg.User != nil {
			user = &models.AppointmentUserRow{
				ID:    agg.User.ID,
				Name:  agg.User.Name,
				Email: agg.User.Email,
			}
		}
		rows = append(rows, models.AdminAppointmentRow{
			ID:          agg.ID,
			User:        user,
			FirstName:   agg.FirstName,
			LastName:    agg.LastName,
			Email:       agg.Email,
			Phone:       agg.Phone,
			Date:        agg.Date,
			Time:        agg.Time,
			ServiceType: agg.ServiceType,
			Status:      agg.Status,
			AdminReply:  agg.AdminReply,
			CreatedAt:   agg.CreatedAt,
		})
	}
	return rows, total, nil
}

func (r *MongoAppointmentRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Appointment, error) {
	set["updatedAt"] = time.Now().UTC()

	var appt models.Appointment
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *MongoAppointmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
