package domain

import "errors"

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrProductNotFound  = errors.New("product not found")
)

// Product is a purchasable catalog item. The catalog is read-only from the
// order path; only seeding writes to it.
type Product struct {
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

// FirstImage returns the image snapshotted onto order lines, or "" when the
// product has none.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
