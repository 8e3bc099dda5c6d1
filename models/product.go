package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product genders
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

// Product is a catalog entry cross-referencing brands and lens types by id.
type Product struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name"`
	Brand           primitive.ObjectID   `bson:"brand,omitempty" json:"brand,omitempty"`
	Price           float64              `bson:"price" json:"price"`
	OriginalPrice   float64              `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Rating          float64              `bson:"rating" json:"rating"`
	Images          []string             `bson:"images" json:"images"`
	Description     string               `bson:"description" json:"description"`
	Shape           string               `bson:"shape,omitempty" json:"shape,omitempty"`
	LensType        []primitive.ObjectID `bson:"lensType,omitempty" json:"lensType,omitempty"`
	Features        []string             `bson:"features,omitempty" json:"features,omitempty"`
	Specifications  map[string]string    `bson:"specifications,omitempty" json:"specifications,omitempty"`
	RelatedProducts []primitive.ObjectID `bson:"relatedProducts,omitempty" json:"relatedProducts,omitempty"`
	Gender          string               `bson:"gender,omitempty" json:"gender,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ValidGender reports whether g is one of the accepted gender values.
// The empty string is allowed: gender is optional.
func ValidGender(g string) bool {
	switch g {
	case "", GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}

// Validate checks the catalog invariants: price >= 0, rating in [0,5].
func (p *Product) Validate() []string {
	var details []string
	if p.Name == "" {
		details = append(details, "Product name is required")
	}
	if p.Description == "" {
		details = append(details, "Description is required")
	}
	if p.Price < 0 {
		details = append(details, "Price must not be negative")
	}
	if p.OriginalPrice < 0 {
		details = append(details, "Original price must not be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		details = append(details, "Rating must be between 0 and 5")
	}
	if !ValidGender(p.Gender) {
		details = append(details, "Gender must be one of men, women, unisex")
	}
	return details
}

// RelatedProduct is the trimmed projection returned by related-product lookups.
type RelatedProduct struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Price  float64            `bson:"price" json:"price"`
	Images []string           `bson:"images" json:"images"`
	Brand  primitive.ObjectID `bson:"brand,omitempty" json:"brand,omitempty"`
	Rating float64            `bson:"rating" json:"rating"`
}
