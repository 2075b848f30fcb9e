package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderCollection = "order"

type OrderStatus string

const (
	// Order statuses (typical flow; only "pending" is assigned here,
	// the rest belong to fulfillment)
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail    string             `bson:"user_email" json:"user_email"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Status       OrderStatus        `bson:"status" json:"status"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ContactPhone string             `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Ref          string             `bson:"ref" json:"ref"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// OrderItem is embedded in its order; product_id holds the hex
// identifier of the referenced product.
type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Qty       int    `bson:"qty" json:"qty"`
}
