package domain

import "time"

// Categories is the fixed set of product categories.
var Categories = []string{
	"Electrónicos",
	"Ropa",
	"Hogar",
	"Deportes",
	"Libros",
	"Juguetes",
	"Otros",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Product is a catalog item. The identifier is assigned on creation and never
// changes; timestamps satisfy UpdatedAt >= CreatedAt and serialize as RFC 3339
// strings in the persisted layout.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductInput is the caller-supplied subset of Product fields for create and
// update requests. Business-rule validation of these fields belongs to the
// presentation edge, not the repository.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Apply merges the input onto p, preserving ID and CreatedAt.
func (in ProductInput) Apply(p Product) Product {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Category = in.Category
	p.Stock = in.Stock
	p.ImageURL = in.ImageURL
	return p
}

// InStock reports whether the product has any stock left.
func (p Product) InStock() bool {
	return p.Stock > 0
}
