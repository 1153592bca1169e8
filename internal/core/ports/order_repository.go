package ports

import (
	"context"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create inserts the order document and returns it with its generated id.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// FindByID retrieves an order scoped to its owning user.
	FindByID(ctx context.Context, id, userID string) (*domain.Order, error)
	// FindByUser returns the user's orders, newest first.
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}
