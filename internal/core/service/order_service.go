package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/formalshoes/store-api/internal/api/metrics"
	"github.com/formalshoes/store-api/internal/core/domain"
	"github.com/formalshoes/store-api/internal/core/ports"
)

const (
	defaultShippingFee   = 9.99
	defaultFreeThreshold = 199
)

// OrderService prices carts against the catalog and persists orders.
type OrderService struct {
	orders        ports.OrderRepository
	catalog       ports.CatalogService
	shippingFee   float64
	freeThreshold float64
	log           zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, catalog ports.CatalogService, shippingFee, freeThreshold float64, log zerolog.Logger) *OrderService {
	if shippingFee <= 0 {
		shippingFee = defaultShippingFee
	}
	if freeThreshold <= 0 {
		freeThreshold = defaultFreeThreshold
	}
	return &OrderService{
		orders:        orders,
		catalog:       catalog,
		shippingFee:   shippingFee,
		freeThreshold: freeThreshold,
		log:           log,
	}
}

// Create resolves every cart line against the catalog, snapshots unit price
// and title, and persists the priced order with status "created". The first
// unresolvable line aborts the whole order; no partial orders are written.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput, user *domain.User) (*domain.Order, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var subtotal float64
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}

		product, err := s.catalog.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		subtotal += product.Price * float64(line.Quantity)
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
			Image:     product.FirstImage(),
		})
	}

	// Round once at the end so per-line rounding errors cannot compound.
	subtotal = round2(subtotal)

	shipping := s.shippingFee
	tier := "flat"
	if subtotal >= s.freeThreshold {
		shipping = 0
		tier = "free"
	}
	total := round2(subtotal + shipping)

	name := in.CustomerName
	if name == "" {
		name = user.Name
	}
	email := in.CustomerEmail
	if email == "" {
		email = user.Email
	}

	order := &domain.Order{
		Items:         items,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         total,
		CustomerName:  name,
		CustomerEmail: email,
		Address:       in.Address,
		Status:        domain.OrderCreated,
		UserID:        user.ID,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(tier).Inc()
	metrics.OrderValue.Observe(total)
	s.log.Info().
		Str("order_id", created.ID).
		Str("user_id", user.ID).
		Float64("total", total).
		Msg("order created")

	return created, nil
}

// ListByUser returns the user's order history, newest first.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

// UpdateStatus advances an order along created → paid → shipped → delivered.
// Only the owning user's orders are visible to the update.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, userID string, next domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, next)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, err
	}

	order.Status = next
	s.log.Info().Str("order_id", order.ID).Str("status", string(next)).Msg("order status updated")
	return order, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
