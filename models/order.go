package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses
const (
	OrderPlaced     = "placed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a recognized order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPlaced, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a purchased line with the price snapshotted at add time.
type OrderItem struct {
	ProductID      primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity       int                `bson:"quantity" json:"quantity" binding:"required,min=1"`
	PriceAtAddTime float64            `bson:"priceAtAddTime" json:"priceAtAddTime"`
}

// Order is a placed order owned by a user.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Total     float64            `bson:"total" json:"total"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateOrderRequest is the order placement payload.
type CreateOrderRequest struct {
	Items []OrderItem `json:"items" binding:"required,dive"`
	Total float64     `json:"total"`
}

// UpdateOrderStatusRequest sets a new order status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemRow pairs an order line with the joined product document.
type OrderItemRow struct {
	Product        *Product `json:"product"`
	Quantity       int      `json:"quantity"`
	PriceAtAddTime float64  `json:"priceAtAddTime"`
}

// OrderUserRow is the flattened owning-user projection on admin order rows.
// A nil pointer marks an order whose user record no longer exists.
type OrderUserRow struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
	Image string             `json:"image,omitempty"`
}

// AdminOrderRow is one reshaped row of the admin order report.
type AdminOrderRow struct {
	ID          string         `json:"_id"`
	User        *OrderUserRow  `json:"user"`
	Items       []OrderItemRow `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// UserOrderRow is one reshaped row of the user-facing order listing.
type UserOrderRow struct {
	ID        primitive.ObjectID `json:"_id"`
	Status    string             `json:"status"`
	Total     float64            `json:"total"`
	Items     []OrderItemRow     `json:"items"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
