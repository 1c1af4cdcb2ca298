package checkout

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/notify"
	"github.com/google/uuid"
)

// Carts is what checkout needs from the cart side.
// Consumers define this interface, not the cart implementation.
type Carts interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// Publisher receives completed orders for confirmation delivery.
type Publisher interface {
	Enqueue(rec domain.OrderRecord)
}

type Service struct {
	carts     Carts
	gateway   PaymentGateway
	publisher Publisher
	notifier  notify.Notifier

	mu       sync.Mutex
	inFlight map[string]struct{} // sessions with a submit in progress
}

func NewService(carts Carts, gateway PaymentGateway, publisher Publisher, notifier notify.Notifier) *Service {
	return &Service{
		carts:     carts,
		gateway:   gateway,
		publisher: publisher,
		notifier:  notifier,
		inFlight:  make(map[string]struct{}),
	}
}

// Submit runs the whole checkout: validate shipping, snapshot the cart at
// today's effective prices, charge, then clear the cart and hand the order
// record off. A second submit for the same session while one is in flight is
// refused rather than queued.
func (s *Service) Submit(ctx context.Context, sessionID string, info domain.ShippingInfo) (*domain.OrderRecord, error) {
	if fieldErrs := ValidateShipping(info); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if !s.begin(sessionID) {
		return nil, ErrCheckoutInFlight
	}
	defer s.end(sessionID)

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	orderID := newOrderID()
	record := buildRecord(orderID, cart, info)

	result, err := s.gateway.Charge(ctx, orderID, record.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("payment charge failed: %w", err)
	}
	if result.Status != ChargeStatusSuccess {
		return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Reason)
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// the order is committed; a dangling cart is an annoyance, not a fault
		log.Printf("failed to clear cart after checkout %s: %v", orderID, err)
	}

	s.notifier.Notify(
		"Order completed",
		fmt.Sprintf("Order #%s was processed. A confirmation was sent to %s.", orderID, record.Email),
		notify.SeveritySuccess,
	)
	s.publisher.Enqueue(record)

	return &record, nil
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}

// buildRecord captures the cart at purchase time: the unit price of every
// line is the effective price at submit, so later catalog edits cannot
// change a completed order.
func buildRecord(orderID string, cart *domain.Cart, info domain.ShippingInfo) domain.OrderRecord {
	record := domain.OrderRecord{
		OrderID:         orderID,
		CustomerName:    fmt.Sprintf("%s %s", info.FirstName, info.LastName),
		Email:           info.Email,
		ShippingAddress: fmt.Sprintf("%s, %s, %s", info.Address, info.City, info.ZipCode),
		Lines:           make([]domain.OrderLine, 0, len(cart.Lines)),
		Currency:        "USD",
		CreatedAt:       time.Now(),
	}

	var total float64
	for _, line := range cart.Lines {
		unit := domain.EffectivePrice(line.Product)
		subtotal := unit * float64(line.Quantity)
		record.Lines = append(record.Lines, domain.OrderLine{
			ProductID: line.Product.ID,
			Title:     line.Product.Title,
			Quantity:  line.Quantity,
			UnitPrice: unit,
			Subtotal:  subtotal,
		})
		total += subtotal
	}
	record.TotalAmount = total
	return record
}

func newOrderID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
