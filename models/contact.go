package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reply senders
const (
	ReplyFromAdmin = "admin"
	ReplyFromUser  = "user"
)

// Reply is one message on a contact thread.
type Reply struct {
	Message string    `bson:"message" json:"message"`
	From    string    `bson:"from" json:"from"`
	Date    time.Time `bson:"date" json:"date"`
}

// Contact is an inbound contact message with its reply thread.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	Replies   []Reply            `bson:"replies" json:"replies"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateContactRequest is the public contact-form payload.
type CreateContactRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Message   string `json:"message" binding:"required"`
}

// ReplyContactRequest records an admin reply on a thread.
type ReplyContactRequest struct {
	ReplyMessage string `json:"replyMessage" binding:"required"`
}
