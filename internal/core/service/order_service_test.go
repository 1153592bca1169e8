package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/formalshoes/store-api/internal/core/domain"
	"github.com/formalshoes/store-api/internal/core/ports"
)

type stubCatalog struct {
	products map[string]*domain.Product
	gets     int
}

func (c *stubCatalog) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, *p)
	}
	return out, nil
}

func (c *stubCatalog) Get(_ context.Context, id string) (*domain.Product, error) {
	c.gets++
	if id == "bad-key" {
		return nil, domain.ErrInvalidProductID
	}
	if p, ok := c.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, domain.ErrProductNotFound
}

func (c *stubCatalog) Seed(_ context.Context) (int, error) { return 0, nil }

type stubOrderRepo struct {
	created []*domain.Order
	orders  map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := *order
	clone.ID = "order-1"
	r.created = append(r.created, &clone)
	r.orders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id, userID string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok || o.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) FindByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func testCatalog() *stubCatalog {
	return &stubCatalog{products: map[string]*domain.Product{
		"prod-a": {ID: "prod-a", Title: "Oxford Classic", Price: 100.00, Images: []string{"https://img/a.jpg"}},
		"prod-b": {ID: "prod-b", Title: "Derby Modern", Price: 50.00},
	}}
}

func testUser() *domain.User {
	return &domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
}

func newTestOrderService(repo *stubOrderRepo, catalog *stubCatalog) *OrderService {
	return NewOrderService(repo, catalog, 9.99, 199, zerolog.Nop())
}

func TestOrderService_Create_FreeShippingAtThreshold(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, testCatalog())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{
			{ProductID: "prod-a", Quantity: 1},
			{ProductID: "prod-b", Quantity: 2},
		},
		Address: "1 Main St",
	}, testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if order.Subtotal != 200.00 {
		t.Fatalf("expected subtotal 200.00, got %v", order.Subtotal)
	}
	if order.Shipping != 0 {
		t.Fatalf("expected free shipping at threshold, got %v", order.Shipping)
	}
	if order.Total != 200.00 {
		t.Fatalf("expected total 200.00, got %v", order.Total)
	}
	if order.ID == "" {
		t.Fatalf("expected persisted order with generated id")
	}
	if order.Status != domain.OrderCreated {
		t.Fatalf("expected status created, got %s", order.Status)
	}
}

func TestOrderService_Create_FlatShippingBelowThreshold(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, testCatalog())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-b", Quantity: 1}},
	}, testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if order.Subtotal != 50.00 {
		t.Fatalf("expected subtotal 50.00, got %v", order.Subtotal)
	}
	if order.Shipping != 9.99 {
		t.Fatalf("expected flat shipping 9.99, got %v", order.Shipping)
	}
	if order.Total != 59.99 {
		t.Fatalf("expected total 59.99, got %v", order.Total)
	}
}

func TestOrderService_Create_SnapshotsProductData(t *testing.T) {
	repo := newStubOrderRepo()
	catalog := testCatalog()
	svc := newTestOrderService(repo, catalog)

	size := 10
	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-a", Quantity: 2, Size: &size, Color: "Black"}},
	}, testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	line := order.Items[0]
	if line.Title != "Oxford Classic" || line.Price != 100.00 {
		t.Fatalf("expected snapshotted title/price, got %+v", line)
	}
	if line.Image != "https://img/a.jpg" {
		t.Fatalf("expected first catalog image, got %q", line.Image)
	}
	if line.Size == nil || *line.Size != 10 || line.Color != "Black" {
		t.Fatalf("expected size/color carried through, got %+v", line)
	}

	// A later catalog price change must not alter the stored order.
	catalog.products["prod-a"].Price = 999
	if repo.created[0].Items[0].Price != 100.00 {
		t.Fatalf("stored price changed after catalog update")
	}
}

func TestOrderService_Create_Deterministic(t *testing.T) {
	input := ports.CreateOrderInput{
		Items: []ports.CartItemInput{
			{ProductID: "prod-a", Quantity: 1},
			{ProductID: "prod-b", Quantity: 3},
		},
	}

	first, err := newTestOrderService(newStubOrderRepo(), testCatalog()).Create(context.Background(), input, testUser())
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := newTestOrderService(newStubOrderRepo(), testCatalog()).Create(context.Background(), input, testUser())
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if first.Subtotal != second.Subtotal || first.Shipping != second.Shipping || first.Total != second.Total {
		t.Fatalf("identical input priced differently: %+v vs %+v", first, second)
	}
}

func TestOrderService_Create_UnknownProductAborts(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, testCatalog())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{
			{ProductID: "prod-a", Quantity: 1},
			{ProductID: "prod-missing", Quantity: 1},
		},
	}, testUser())
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no order must be persisted when a line fails")
	}
}

func TestOrderService_Create_InvalidProductID(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, testCatalog())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "bad-key", Quantity: 1}},
	}, testUser())
	if !errors.Is(err, domain.ErrInvalidProductID) {
		t.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("no order must be persisted on invalid id")
	}
}

func TestOrderService_Create_ContactDefaults(t *testing.T) {
	svc := newTestOrderService(newStubOrderRepo(), testCatalog())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-b", Quantity: 1}},
	}, testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.CustomerName != "Alice" || order.CustomerEmail != "alice@example.com" {
		t.Fatalf("expected contact defaults from identity, got %q %q", order.CustomerName, order.CustomerEmail)
	}
	if order.UserID != "user-1" {
		t.Fatalf("expected owning user id, got %q", order.UserID)
	}

	override, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items:         []ports.CartItemInput{{ProductID: "prod-b", Quantity: 1}},
		CustomerName:  "Gift Recipient",
		CustomerEmail: "gift@example.com",
	}, testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if override.CustomerName != "Gift Recipient" || override.CustomerEmail != "gift@example.com" {
		t.Fatalf("expected overrides to win, got %q %q", override.CustomerName, override.CustomerEmail)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	catalog := testCatalog()
	svc := newTestOrderService(newStubOrderRepo(), catalog)

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-a", Quantity: 1}},
	}, nil); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for nil identity, got %v", err)
	}
	if catalog.gets != 0 {
		t.Fatalf("catalog must not be consulted before the auth gate")
	}

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{}, testUser()); !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-a", Quantity: 0}},
	}, testUser()); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, testCatalog())

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-b", Quantity: 1}},
	}, testUser())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), order.ID, "user-1", domain.OrderPaid)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != domain.OrderPaid {
		t.Fatalf("expected status paid, got %s", updated.Status)
	}

	// paid -> delivered skips shipped and must be rejected.
	if _, err := svc.UpdateStatus(context.Background(), order.ID, "user-1", domain.OrderDelivered); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	// Another user must not see the order at all.
	if _, err := svc.UpdateStatus(context.Background(), order.ID, "user-2", domain.OrderShipped); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "missing", "user-1", domain.OrderPaid); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_ListByUser(t *testing.T) {
	repo := newStubOrderRepo()
	svc := newTestOrderService(repo, testCatalog())

	if _, err := svc.Create(context.Background(), ports.CreateOrderInput{
		Items: []ports.CartItemInput{{ProductID: "prod-b", Quantity: 1}},
	}, testUser()); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	mine, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 order, got %d", len(mine))
	}

	theirs, err := svc.ListByUser(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("ListByUser returned error: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("expected no orders for other user, got %d", len(theirs))
	}
}
