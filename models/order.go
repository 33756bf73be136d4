package models

import "time"

type OrderStatus string

// The admin order screens use two overlapping vocabularies; both are accepted.
const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "Approved"
	OrderAssigned  OrderStatus = "assigned"
	OrderCompleted OrderStatus = "Completed"
	OrderCancelled OrderStatus = "Cancelled"
)

type OrderItem struct {
	Name      string  `bson:"name" json:"name"`
	SellPrice float64 `bson:"sellPrice" json:"sellPrice"`
}

// Order is the purchase record tracked by admin tooling. It is independent of Booking.
type Order struct {
	ID          string      `bson:"id" json:"id"`
	UserID      string      `bson:"userId" json:"userId"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalAmount float64     `bson:"totalAmount" json:"totalAmount"`
	Status      OrderStatus `bson:"status" json:"status"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type OrderStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}
