package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/formalshoes/store-api/internal/core/domain"
)

const productsCollection = "shoes"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Brand       string             `bson:"brand,omitempty"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Images      []string           `bson:"images"`
	Rating      float64            `bson:"rating"`
	InStock     bool               `bson:"in_stock"`
	Colors      []string           `bson:"colors"`
	Sizes       []int              `bson:"sizes"`
}

func (rec *productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          rec.ID.Hex(),
		Title:       rec.Title,
		Description: rec.Description,
		Brand:       rec.Brand,
		Price:       rec.Price,
		Category:    rec.Category,
		Images:      rec.Images,
		Rating:      rec.Rating,
		InStock:     rec.InStock,
		Colors:      rec.Colors,
		Sizes:       rec.Sizes,
	}
}

func toProductRecord(p domain.Product) productRecord {
	return productRecord{
		Title:       p.Title,
		Description: p.Description,
		Brand:       p.Brand,
		Price:       p.Price,
		Category:    p.Category,
		Images:      p.Images,
		Rating:      p.Rating,
		InStock:     p.InStock,
		Colors:      p.Colors,
		Sizes:       p.Sizes,
	}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var records []productRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, len(records))
	for i := range records {
		products[i] = records[i].toDomain()
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidProductID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec productRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product := rec.toDomain()
	return &product, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *ProductRepository) InsertMany(ctx context.Context, products []domain.Product) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = toProductRecord(p)
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert products: %w", err)
	}
	return len(res.InsertedIDs), nil
}
