package checkout

import (
	"context"
	"time"
)

// StatusConfirmed is the only order status: fulfillment is simulated, orders
// never move past confirmation.
const StatusConfirmed = "confirmed"

type Order struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID string    `json:"productId"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	WilayaID  string    `json:"wilayaId"`
	Commune   string    `json:"commune"`
	Address   string    `json:"address,omitempty"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, bool, error)
}
