package repository

import (
	"context"
	"sync"

	"github.com/Ibrakam/PartyLand/internal/domain"
)

// MemoryStore keeps carts in process memory. Used by tests and by
// deployments without a DATABASE_URL, where carts live only as long as the
// process.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.LineItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]domain.LineItem)}
}

func (s *MemoryStore) GetItems(ctx context.Context, token string) ([]domain.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.carts[token]
	if !ok {
		return []domain.LineItem{}, nil
	}
	items := make([]domain.LineItem, len(stored))
	copy(items, stored)
	return items, nil
}

func (s *MemoryStore) SaveItems(ctx context.Context, token string, items []domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		delete(s.carts, token)
		return nil
	}
	stored := make([]domain.LineItem, len(items))
	copy(stored, items)
	s.carts[token] = stored
	return nil
}

func (s *MemoryStore) DeleteCart(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
	return nil
}
