package handler

import "time"

// --- Request types ---

type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
	Size      *int   `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type createOrderRequest struct {
	Items         []cartItemRequest `json:"items"                    validate:"required,min=1,dive"`
	CustomerName  string            `json:"customer_name,omitempty"`
	CustomerEmail string            `json:"customer_email,omitempty" validate:"omitempty,email"`
	Address       string            `json:"address,omitempty"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=paid shipped delivered"`
}

// --- Response types ---

type orderItemResponse struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      *int    `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	Items         []orderItemResponse `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	Shipping      float64             `json:"shipping"`
	Total         float64             `json:"total"`
	CustomerName  string              `json:"customer_name,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	Address       string              `json:"address,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
}
