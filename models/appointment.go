package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment statuses
const (
	AppointmentPending  = "pending"
	AppointmentApproved = "approved"
	AppointmentReplied  = "replied"
	AppointmentRejected = "rejected"
)

// Appointment is a booked service slot. Uniqueness of
// (user, serviceType, date, time) is enforced by a compound index.
type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	ServiceType string             `bson:"serviceType" json:"serviceType"`
	Status      string             `bson:"status" json:"status"`
	AdminReply  string             `bson:"adminReply,omitempty" json:"adminReply,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateAppointmentRequest books a slot for the logged-in user.
type CreateAppointmentRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
}

// UpdateAppointmentStatusRequest approves/rejects a slot or records a reply.
type UpdateAppointmentStatusRequest struct {
	Status     string `json:"status"`
	AdminReply string `json:"adminReply"`
}

// AppointmentUserRow is the flattened owning-user projection on admin rows.
type AppointmentUserRow struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// AdminAppointmentRow is one reshaped row of the admin appointment report.
type AdminAppointmentRow struct {
	ID          primitive.ObjectID  `json:"_id"`
	User        *AppointmentUserRow `json:"user"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Date        string              `json:"date"`
	Time        string              `json:"time"`
	ServiceType string              `json:"serviceType"`
	Status      string              `json:"status"`
	AdminReply  string              `json:"adminReply,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
