package cart

import (
	"context"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
)

// MemoryStore implements Store with in-memory storage. Every operation holds
// the lock for its whole duration, so readers never observe a half-applied
// mutation.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart // sessionID -> cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]*domain.Cart),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return nil, ErrCartNotFound
	}
	return cart.Clone(), nil
}

func (s *MemoryStore) AddLine(_ context.Context, sessionID string, p domain.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cart, exists := s.carts[sessionID]
	if !exists {
		cart = &domain.Cart{SessionID: sessionID, CreatedAt: now}
		s.carts[sessionID] = cart
	}

	if line := cart.Line(p.ID); line != nil {
		line.Quantity++
		cart.UpdatedAt = now
		return false, nil
	}

	cart.Lines = append(cart.Lines, domain.CartLine{Product: p, Quantity: 1, AddedAt: now})
	cart.UpdatedAt = now
	return true, nil
}

func (s *MemoryStore) UpdateQuantity(_ context.Context, sessionID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return nil
	}
	if line := cart.Line(productID); line != nil {
		line.Quantity = quantity
		cart.UpdatedAt = time.Now()
	}
	return nil
}

func (s *MemoryStore) RemoveLine(_ context.Context, sessionID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[sessionID]
	if !exists {
		return false, nil
	}
	for i, line := range cart.Lines {
		if line.Product.ID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			cart.UpdatedAt = time.Now()
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}
