package ports

import (
	"context"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindByID fails with domain.ErrInvalidProductID when id is not a
	// well-formed catalog key and domain.ErrProductNotFound when no item
	// matches.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) (int, error)
}

// ProductCache is a read-through cache in front of the catalog. Get returns
// (nil, nil) on a miss.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
	Set(ctx context.Context, product *domain.Product) error
}
