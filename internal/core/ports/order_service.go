package ports

import (
	"context"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// CartItemInput is a client-submitted request to purchase Quantity units of a
// catalog item with optional size/color.
type CartItemInput struct {
	ProductID string
	Quantity  int
	Size      *int
	Color     string
}

// CreateOrderInput carries all data needed to price and persist an order.
// Contact fields are overrides; when empty they default to the authenticated
// user's stored name and email.
type CreateOrderInput struct {
	Items         []CartItemInput
	CustomerName  string
	CustomerEmail string
	Address       string
}

// OrderService defines the order use cases.
type OrderService interface {
	// Create resolves every cart line against the catalog, snapshots prices,
	// computes subtotal/shipping/total and persists the order. The first
	// unresolvable line aborts the whole order; nothing is persisted.
	Create(ctx context.Context, input CreateOrderInput, user *domain.User) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// UpdateStatus advances an order owned by userID along the
	// created -> paid -> shipped -> delivered lifecycle.
	UpdateStatus(ctx context.Context, orderID, userID string, next domain.OrderStatus) (*domain.Order, error)
}
