package cart

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// Store holds session carts. Implementations own the one-line-per-product
// invariant; quantity semantics below 1 live in Service, not here.
type Store interface {
	// Get returns the cart for the session, or ErrCartNotFound.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// AddLine increments the existing line for the product or appends a new
	// line with quantity 1. Reports whether a new line was created.
	AddLine(ctx context.Context, sessionID string, p domain.Product) (added bool, err error)

	// UpdateQuantity sets the quantity of the matching line. A missing cart or
	// line is a silent no-op.
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error

	// RemoveLine deletes the matching line. Reports whether a line existed.
	RemoveLine(ctx context.Context, sessionID, productID string) (removed bool, err error)

	// Clear drops the session's cart entirely.
	Clear(ctx context.Context, sessionID string) error
}
