package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formalshoes/store-api/internal/core/domain"
)

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderItemRecord struct {
	ProductID string  `bson:"product_id"`
	Title     string  `bson:"title"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
	Size      *int    `bson:"size,omitempty"`
	Color     string  `bson:"color,omitempty"`
	Image     string  `bson:"image,omitempty"`
}

type orderRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Items         []orderItemRecord  `bson:"items"`
	Subtotal      float64            `bson:"subtotal"`
	Shipping      float64            `bson:"shipping"`
	Total         float64            `bson:"total"`
	CustomerName  string             `bson:"customer_name,omitempty"`
	CustomerEmail string             `bson:"customer_email,omitempty"`
	Address       string             `bson:"address,omitempty"`
	Status        string             `bson:"status"`
	UserID        string             `bson:"user_id"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func toOrderRecord(o *domain.Order) orderRecord {
	items := make([]orderItemRecord, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemRecord{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		}
	}
	return orderRecord{
		Items:         items,
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Total:         o.Total,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Address:       o.Address,
		Status:        string(o.Status),
		UserID:        o.UserID,
		CreatedAt:     o.CreatedAt,
	}
}

func (rec *orderRecord) toDomain() domain.Order {
	items := make([]domain.OrderItem, len(rec.Items))
	for i, item := range rec.Items {
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		}
	}
	return domain.Order{
		ID:            rec.ID.Hex(),
		Items:         items,
		Subtotal:      rec.Subtotal,
		Shipping:      rec.Shipping,
		Total:         rec.Total,
		CustomerName:  rec.CustomerName,
		CustomerEmail: rec.CustomerEmail,
		Address:       rec.Address,
		Status:        domain.OrderStatus(rec.Status),
		UserID:        rec.UserID,
		CreatedAt:     rec.CreatedAt,
	}
}

// Create inserts the order as a single self-contained document.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toOrderRecord(order))
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByID retrieves an order scoped to its owning user. An order belonging
// to someone else is indistinguishable from a missing one.
func (r *OrderRepository) FindByID(ctx context.Context, id, userID string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec orderRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	order := rec.toDomain()
	return &order, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var records []orderRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, len(records))
	for i := range records {
		orders[i] = records[i].toDomain()
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
