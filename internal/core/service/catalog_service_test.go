package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/formalshoes/store-api/internal/core/domain"
)

type stubProductRepo struct {
	products map[string]*domain.Product
	finds    int
	inserted []domain.Product
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.finds++
	if id == "bad-key" {
		return nil, domain.ErrInvalidProductID
	}
	if p, ok := r.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *stubProductRepo) InsertMany(_ context.Context, products []domain.Product) (int, error) {
	for i := range products {
		p := products[i]
		p.ID = fmt.Sprintf("seed-%d", len(r.products))
		r.products[p.ID] = &p
		r.inserted = append(r.inserted, p)
	}
	return len(products), nil
}

type stubProductCache struct {
	entries map[string]*domain.Product
	err     error
	sets    int
}

func newStubProductCache() *stubProductCache {
	return &stubProductCache{entries: make(map[string]*domain.Product)}
}

func (c *stubProductCache) Get(_ context.Context, id string) (*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	if p, ok := c.entries[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (c *stubProductCache) Set(_ context.Context, p *domain.Product) error {
	if c.err != nil {
		return c.err
	}
	c.sets++
	clone := *p
	c.entries[p.ID] = &clone
	return nil
}

func TestCatalogService_Get_CacheMissThenHit(t *testing.T) {
	repo := newStubProductRepo(&domain.Product{ID: "prod-a", Title: "Oxford Classic", Price: 149.99})
	cache := newStubProductCache()
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	first, err := svc.Get(context.Background(), "prod-a")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if first.Title != "Oxford Classic" {
		t.Fatalf("unexpected product: %+v", first)
	}
	if repo.finds != 1 || cache.sets != 1 {
		t.Fatalf("expected one store read and one cache fill, got %d/%d", repo.finds, cache.sets)
	}

	second, err := svc.Get(context.Background(), "prod-a")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if second.Title != "Oxford Classic" {
		t.Fatalf("unexpected cached product: %+v", second)
	}
	if repo.finds != 1 {
		t.Fatalf("expected cache hit to skip the store, got %d reads", repo.finds)
	}
}

func TestCatalogService_Get_CacheFailureFallsThrough(t *testing.T) {
	repo := newStubProductRepo(&domain.Product{ID: "prod-a", Title: "Oxford Classic"})
	cache := newStubProductCache()
	cache.err = errors.New("redis down")
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	p, err := svc.Get(context.Background(), "prod-a")
	if err != nil {
		t.Fatalf("expected direct store read despite cache failure, got %v", err)
	}
	if p.ID != "prod-a" {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestCatalogService_Get_NilCache(t *testing.T) {
	repo := newStubProductRepo(&domain.Product{ID: "prod-a"})
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "prod-a"); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
}

func TestCatalogService_Get_Errors(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), nil, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "bad-key"); !errors.Is(err, domain.ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogService_List(t *testing.T) {
	repo := newStubProductRepo(
		&domain.Product{ID: "prod-a"},
		&domain.Product{ID: "prod-b"},
	)
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
}

func TestCatalogService_Seed(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	n, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if n == 0 || len(repo.inserted) != n {
		t.Fatalf("expected sample catalog inserted, got %d", n)
	}

	again, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("second Seed returned error: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected no-op on populated catalog, got %d", again)
	}
}
