package ports

import (
	"context"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create inserts a new account and returns it with its generated id.
	// A duplicate email surfaces as domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
