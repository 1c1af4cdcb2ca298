package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
	"golang.org/x/sync/singleflight"
)

// Service is the single source of truth for in-progress orders. It layers the
// storefront semantics over a Store: duplicate adds increment, quantities
// below 1 remove, totals always derive from the current lines.
type Service struct {
	store    Store
	notifier notify.Notifier
	sfg      singleflight.Group // collapses concurrent loads per session
}

func NewService(store Store, notifier notify.Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// Get returns the session's cart. An unknown session yields an empty cart,
// not an error.
func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		cart, errGet := s.store.Get(ctx, sessionID)
		if errGet != nil && errors.Is(errGet, ErrCartNotFound) {
			now := time.Now()
			return &domain.Cart{
				SessionID: sessionID,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}
		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// Add puts one unit of the product into the cart. An existing line is
// incremented; otherwise a new line is appended after the existing ones.
func (s *Service) Add(ctx context.Context, sessionID string, p domain.Product) error {
	added, err := s.store.AddLine(ctx, sessionID, p)
	if err != nil {
		log.Printf("store add line error: %v", err)
		return err
	}

	if added {
		s.notifier.Notify("Added to cart", fmt.Sprintf("%s added to the cart", p.Title), notify.SeveritySuccess)
	} else {
		s.notifier.Notify("Cart updated", fmt.Sprintf("%s updated in the cart", p.Title), notify.SeverityInfo)
	}
	return nil
}

// UpdateQuantity sets a line's quantity. Anything below 1 removes the line;
// an unknown product is a benign no-op since callers may race with removals.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	if quantity < 1 {
		return s.Remove(ctx, sessionID, productID)
	}

	if err := s.store.UpdateQuantity(ctx, sessionID, productID, quantity); err != nil {
		log.Printf("store update quantity error: %v", err)
		return err
	}
	return nil
}

// Remove deletes a line. The notification fires only when a line was actually
// there to delete.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) error {
	removed, err := s.store.RemoveLine(ctx, sessionID, productID)
	if err != nil {
		log.Printf("store remove line error: %v", err)
		return err
	}

	if removed {
		s.notifier.Notify("Item removed", "The product was removed from the cart", notify.SeverityError)
	}
	return nil
}

// Clear empties the cart unconditionally.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		log.Printf("store clear error: %v", err)
		return err
	}

	s.notifier.Notify("Cart emptied", "All products were removed from the cart", notify.SeverityInfo)
	return nil
}
