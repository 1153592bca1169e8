package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/formalshoes/store-api/internal/api/metrics"
	"github.com/formalshoes/store-api/internal/core/domain"
	"github.com/formalshoes/store-api/internal/core/ports"
)

// CatalogService serves read access to the product catalog with a
// read-through cache in front of single-item lookups.
type CatalogService struct {
	products ports.ProductRepository
	cache    ports.ProductCache // optional; nil disables caching
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, cache ports.ProductCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, cache: cache, log: log}
}

// List returns the full catalog. Unbounded: the storefront catalog is small
// and the API has no pagination.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

// Get resolves a single catalog item by id, consulting the cache first.
// Cache failures degrade to a direct store read, never a request failure.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("product_id", id).Msg("catalog cache read failed")
		} else if cached != nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, product); err != nil {
			s.log.Warn().Err(err).Str("product_id", id).Msg("catalog cache write failed")
		}
	}
	return product, nil
}

// Seed inserts the sample catalog when the collection is empty. Calling it
// against a populated catalog is a no-op.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	count, err := s.products.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted, err := s.products.InsertMany(ctx, sampleCatalog())
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("count", inserted).Msg("catalog seeded")
	return inserted, nil
}
