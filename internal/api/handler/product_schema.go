package handler

import "github.com/formalshoes/store-api/internal/core/domain"

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// changes.

type productResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Rating      float64  `json:"rating"`
	InStock     bool     `json:"in_stock"`
	Colors      []string `json:"colors"`
	Sizes       []int    `json:"sizes"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
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

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
