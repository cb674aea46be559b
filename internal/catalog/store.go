package catalog

import "context"

// Product is a catalog entry. Prices travel as decimal strings so the wire
// format never picks up float rounding noise.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"originalPrice"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	OnSale        bool    `json:"onSale"`
	Description   string  `json:"description,omitempty"`
}

// Store is read-only after seeding: no mutation operation exists on purpose.
type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Search(ctx context.Context, query string) ([]Product, error)
}
