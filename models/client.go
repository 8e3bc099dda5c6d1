package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Purchase is one line of a client's purchase ledger. Subtotal is always
// derived from quantity*price, never accepted from input.
type Purchase struct {
	Name     string  `bson:"name" json:"name" binding:"required"`
	Quantity int     `bson:"quantity" json:"quantity" binding:"required,min=1"`
	Price    float64 `bson:"price" json:"price" binding:"required,gte=0"`
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
}

// Client is an in-store client record with its purchase ledger. Version is
// the optimistic-concurrency token incremented on every ledger write.
type Client struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Phone          string             `bson:"phone" json:"phone"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Purchases      []Purchase         `bson:"purchases" json:"purchases"`
	TotalPurchases float64            `bson:"totalPurchases" json:"totalPurchases"`
	Version        int64              `bson:"version" json:"-"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NormalizePurchases recomputes every line subtotal and returns the ledger
// total. The invariant totalPurchases == sum(quantity*price) holds after
// every ledger mutation because all writers go through this.
func NormalizePurchases(purchases []Purchase) ([]Purchase, float64) {
	out := make([]Purchase, len(purchases))
	var total float64
	for i, p := range purchases {
		p.Subtotal = float64(p.Quantity) * p.Price
		total += p.Subtotal
		out[i] = p
	}
	return out, total
}

// CreateClientRequest creates a client, optionally with initial purchases.
type CreateClientRequest struct {
	Name      string     `json:"name" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	Purchases []Purchase `json:"purchases" binding:"omitempty,dive"`
}

// UpdateClientRequest carries partial client updates. A non-nil Purchases
// replaces the whole ledger.
type UpdateClientRequest struct {
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Email     string      `json:"email"`
	Address   string      `json:"address"`
	Purchases *[]Purchase `json:"purchases" binding:"omitempty,dive"`
}

// AddPurchaseRequest appends one ledger line.
type AddPurchaseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gte=0"`
}
