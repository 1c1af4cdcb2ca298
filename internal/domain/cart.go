package domain

import "time"

// Cart is the session-scoped set of products a shopper intends to buy.
// Line order is insertion order and stays stable across updates.
type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine pairs one product with a quantity. A cart holds at most one line
// per product ID; quantity is >= 1 for as long as the line exists.
type CartLine struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// TotalItems is recomputed from the lines on every call, never cached.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalAmount sums effective unit price times quantity over all lines.
func (c *Cart) TotalAmount() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += EffectivePrice(line.Product) * float64(line.Quantity)
	}
	return total
}

// Line returns the line for the given product ID, or nil.
func (c *Cart) Line(productID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// Clone returns a copy that shares no line storage with the receiver, so a
// caller can read it while the original keeps mutating.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Lines = make([]CartLine, len(c.Lines))
	copy(clone.Lines, c.Lines)
	return &clone
}
