package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sony/gobreaker/v2"
)

type ChargeStatus int

const (
	ChargeStatusSuccess ChargeStatus = iota
	ChargeStatusFailed
)

type ChargeResult struct {
	Status        ChargeStatus
	TransactionID string
	Reason        string // set when the charge was refused
}

// PaymentGateway is the asynchronous payment collaborator. Charge honors
// context cancellation: a torn-down caller abandons the attempt before any
// commitment is made.
type PaymentGateway interface {
	Charge(ctx context.Context, orderID string, amount float64) (*ChargeResult, error)
}

// StatusSource decides the outcome of a simulated charge.
type StatusSource interface {
	Outcome() (ChargeStatus, string)
}

// RandomStatus approves roughly 95% of charges.
type RandomStatus struct{}

func (RandomStatus) Outcome() (ChargeStatus, string) {
	return calcOutcome(rand.Intn(101)) // 101 because Intn is exclusive of the upper bound
}

func calcOutcome(n int) (ChargeStatus, string) {
	if n < 95 {
		return ChargeStatusSuccess, ""
	}
	switch n - 95 {
	case 1:
		return ChargeStatusFailed, "insufficient funds"
	case 2:
		return ChargeStatusFailed, "card expired"
	case 3:
		return ChargeStatusFailed, "card blocked"
	case 4:
		return ChargeStatusFailed, "issuer unavailable"
	default:
		return ChargeStatusFailed, "unknown reason"
	}
}

// FixedStatus always returns the same outcome. Used in tests and demo wiring.
type FixedStatus struct {
	Status ChargeStatus
	Reason string
}

func (f FixedStatus) Outcome() (ChargeStatus, string) {
	return f.Status, f.Reason
}

// SimulatedGateway stands in for a real payment processor: a fixed network
// delay followed by an outcome from the status source.
type SimulatedGateway struct {
	Delay  time.Duration
	Status StatusSource
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		Delay:  delay,
		Status: RandomStatus{},
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, orderID string, _ float64) (*ChargeResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.Delay):
	}

	status, reason := g.Status.Outcome()
	return &ChargeResult{
		Status:        status,
		TransactionID: fmt.Sprintf("TXN-%s-%d", orderID, time.Now().UnixNano()),
		Reason:        reason,
	}, nil
}

// BreakerGateway wraps a gateway in a circuit breaker so a misbehaving
// processor fails fast instead of stalling every checkout.
type BreakerGateway struct {
	cb   *gobreaker.CircuitBreaker[*ChargeResult]
	next PaymentGateway
}

func NewBreakerGateway(next PaymentGateway) *BreakerGateway {
	cb := gobreaker.NewCircuitBreaker[*ChargeResult](gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
	})
	return &BreakerGateway{cb: cb, next: next}
}

func (g *BreakerGateway) Charge(ctx context.Context, orderID string, amount float64) (*ChargeResult, error) {
	return g.cb.Execute(func() (*ChargeResult, error) {
		return g.next.Charge(ctx, orderID, amount)
	})
}
