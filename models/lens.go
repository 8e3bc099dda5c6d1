package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Lens is a lens type offered with frames.
type Lens struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Benefits    string             `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Features    []string           `bson:"features,omitempty" json:"features,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
}
