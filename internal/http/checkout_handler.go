package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
)

type CheckoutService interface {
	Submit(ctx context.Context, sessionID string, info domain.ShippingInfo) (*domain.OrderRecord, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(service CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: service,
		timeout:  timeout,
	}
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session")
		return
	}

	var info domain.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	record, err := h.checkout.Submit(ctx, sessionID, info)
	if err != nil {
		handleCheckoutError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func handleCheckoutError(w http.ResponseWriter, err error) {
	var vErr *checkout.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "shipping information is invalid",
			Code:    "invalid_shipping",
			Details: vErr.Fields,
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "empty_cart", "cart is empty")
	case errors.Is(err, checkout.ErrCheckoutInFlight):
		respondError(w, http.StatusConflict, "checkout_in_flight", "a checkout for this cart is already in progress")
	case errors.Is(err, checkout.ErrPaymentDeclined):
		respondError(w, http.StatusPaymentRequired, "payment_declined", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
	}
}
