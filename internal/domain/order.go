package domain

import "time"

// ShippingInfo carries the checkout form fields.
type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Notes     string `json:"notes,omitempty"`
}

// OrderLine captures one cart line at purchase time, with the unit price the
// shopper paid. Later catalog price changes do not affect completed orders.
type OrderLine struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderRecord is produced once per completed checkout. It is handed to the
// confirmation publisher and the success view; it is not stored.
type OrderRecord struct {
	OrderID         string      `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	Email           string      `json:"email"`
	ShippingAddress string      `json:"shipping_address"`
	Lines           []OrderLine `json:"lines"`
	TotalAmount     float64     `json:"total_amount"`
	Currency        string      `json:"currency"`
	CreatedAt       time.Time   `json:"created_at"`
}
