package checkout

import "errors"

var (
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
	ErrCheckoutInFlight = errors.New("checkout already in progress for this session")
	ErrPaymentDeclined  = errors.New("payment was declined")
	ErrInvalidShipping  = errors.New("shipping information is invalid")
)

// ValidationError reports per-field shipping form violations.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return ErrInvalidShipping.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidShipping
}
