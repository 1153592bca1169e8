package ports

import (
	"context"

	"github.com/formalshoes/store-api/internal/core/domain"
)

// CatalogService exposes read access to the product catalog plus one-off
// seeding of sample data.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Seed inserts the sample catalog when the collection is empty and
	// returns the number of items inserted (0 when already populated).
	Seed(ctx context.Context) (int, error)
}
