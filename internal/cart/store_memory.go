package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemStore serializes every operation behind one mutex. Each store call is a
// single read-modify-write with no yield point, which is all the atomicity
// the cart needs.
type MemStore struct {
	mu       sync.Mutex
	products ProductSource
	items    map[string]Item
	order    []string
}

func NewMemStore(products ProductSource) *MemStore {
	return &MemStore{
		products: products,
		items:    make(map[string]Item),
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListForSession(ctx context.Context, sessionID string) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, 0, 8)
	for _, id := range s.order {
		it := s.items[id]
		if it.SessionID != sessionID {
			continue
		}

		p, ok, err := s.products.Get(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrIntegrity, it.ProductID)
		}

		out = append(out, Line{Item: it, Product: p})
	}
	return out, nil
}

func (s *MemStore) Add(ctx context.Context, p AddParams) (Item, error) {
	qty := p.Quantity
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// One item per (session, product): a duplicate add merges quantities.
	for _, id := range s.order {
		it := s.items[id]
		if it.SessionID == p.SessionID && it.ProductID == p.ProductID {
			it.Quantity += qty
			s.items[id] = it
			return it, nil
		}
	}

	it := Item{
		ID:        uuid.NewString(),
		SessionID: p.SessionID,
		ProductID: p.ProductID,
		Quantity:  qty,
	}
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)
	return it, nil
}

func (s *MemStore) UpdateQuantity(ctx context.Context, id string, quantity int) (Item, bool, error) {
	if quantity < 1 {
		return Item{}, false, ErrQuantityTooLow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return Item{}, false, nil
	}

	it.Quantity = quantity
	s.items[id] = it
	return it, true, nil
}

func (s *MemStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return nil
	}

	delete(s.items, id)
	s.dropFromOrder(id)
	return nil
}

func (s *MemStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		if s.items[id].SessionID == sessionID {
			delete(s.items, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return nil
}

func (s *MemStore) dropFromOrder(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
