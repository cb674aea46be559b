package catalog

import (
	"context"
	"strings"
	"sync"
)

// MemStore keeps the catalog in a map plus an order slice so List returns
// products in seed order, not map order.
type MemStore struct {
	mu    sync.RWMutex
	byID  map[string]Product
	order []string
}

func NewMemStore() *MemStore {
	s := &MemStore{byID: make(map[string]Product)}
	for _, p := range seedProducts() {
		if _, dup := s.byID[p.ID]; dup {
			continue
		}
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *MemStore) Get(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok, nil
}

func (s *MemStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, 8)
	for _, id := range s.order {
		if p := s.byID[id]; p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) Search(ctx context.Context, query string) ([]Product, error) {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, 8)
	for _, id := range s.order {
		p := s.byID[id]
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			(p.Description != "" && strings.Contains(strings.ToLower(p.Description), q)) {
			out = append(out, p)
		}
	}
	return out, nil
}
