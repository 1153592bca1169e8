package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/formalshoes/store-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// ProductCache is a read-through cache for catalog items backed by Redis.
// Key format: product:<id>. Entries expire after cacheTTL so stale prices
// are bounded even without invalidation.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached product, or (nil, nil) on a miss.
func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var product domain.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &product, nil
}

// Set stores a product for cacheTTL.
func (c *ProductCache) Set(ctx context.Context, product *domain.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(product.ID), raw, cacheTTL).Err()
}

func (c *ProductCache) key(id string) string {
	return "product:" + id
}
