package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CartItem is an embedded cart line with the price snapshotted at add time.
type CartItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID      primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity       int                `bson:"quantity" json:"quantity"`
	PriceAtAddTime float64            `bson:"priceAtAddTime" json:"priceAtAddTime"`
}

// User is an identity record with its embedded cart and wishlist.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Email     string               `bson:"email" json:"email"`
	Image     string               `bson:"image,omitempty" json:"image,omitempty"`
	Password  string               `bson:"password" json:"-"`
	Role      string               `bson:"role" json:"role"`
	Cart      []CartItem           `bson:"cart" json:"cart"`
	Wishlist  []primitive.ObjectID `bson:"wishlist" json:"wishlist"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the serializable view of a user returned by auth endpoints.
type PublicUser struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
	Image string             `json:"image,omitempty"`
}

// Public strips credentials and embedded lists from a user record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Image: u.Image,
	}
}

// RegisterRequest is the auth registration payload.
type RegisterRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

// LoginRequest is the auth login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries partial profile updates.
type UpdateProfileRequest struct {
	Name            string `form:"name" json:"name"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	CurrentPassword string `form:"currentPassword" json:"currentPassword"`
}

// AddCartItemRequest adds a product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateCartItemRequest changes the quantity of an existing cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// AddWishlistRequest adds a product to the wishlist.
type AddWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
