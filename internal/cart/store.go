package cart

import (
	"context"
	"errors"

	"Sabwear/internal/catalog"
)

var (
	// ErrQuantityTooLow rejects absolute quantity updates below 1.
	ErrQuantityTooLow = errors.New("quantity must be at least 1")

	// ErrIntegrity means a cart item references a product the catalog does
	// not have. Products never leave the catalog, so this is a broken
	// invariant, not a user error.
	ErrIntegrity = errors.New("cart item references missing product")
)

type Item struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Line is an Item joined with its full product record, the shape the cart
// listing returns.
type Line struct {
	Item
	Product catalog.Product `json:"product"`
}

type AddParams struct {
	SessionID string
	ProductID string
	Quantity  int // values below 1 fall back to 1
}

// ProductSource is the slice of the catalog the cart needs for its join.
type ProductSource interface {
	Get(ctx context.Context, id string) (catalog.Product, bool, error)
}

type Store interface {
	Ping(ctx context.Context) error
	ListForSession(ctx context.Context, sessionID string) ([]Line, error)
	Add(ctx context.Context, p AddParams) (Item, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (Item, bool, error)
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context, sessionID string) error
}
