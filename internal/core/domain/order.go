package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderCreated   OrderStatus = "created"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderCreated: {OrderPaid},
	OrderPaid:    {OrderShipped},
	OrderShipped: {OrderDelivered},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrEmptyCart = errors.New("cart is empty")
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a priced cart line. Title, Price and Image are snapshots taken
// at order-creation time; later catalog changes never alter a stored order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      *int    `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// Order is the core aggregate root. It is a single self-contained document:
// no other collection needs to change when an order is written.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Shipping      float64     `json:"shipping"`
	Total         float64     `json:"total"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	Address       string      `json:"address,omitempty"`
	Status        OrderStatus `json:"status"`
	UserID        string      `json:"user_id"`
	CreatedAt     time.Time   `json:"created_at"`
}
