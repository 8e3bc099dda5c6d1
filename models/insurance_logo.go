package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InsuranceLogo is an accepted-insurance asset shown on the storefront.
type InsuranceLogo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
