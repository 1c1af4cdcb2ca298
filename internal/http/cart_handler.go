package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
)

const maxQuantity = 99

// CartService is what the handler needs from the cart layer.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Add(ctx context.Context, sessionID string, p domain.Product) error
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	Remove(ctx context.Context, sessionID, productID string) error
	Clear(ctx context.Context, sessionID string) error
}

type CartHandler struct {
	carts   CartService
	catalog *catalog.Catalog
	timeout time.Duration
}

func NewCartHandler(carts CartService, c *catalog.Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: c,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	if err := h.carts.Add(ctx, sessionID, product); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusCreated, cart)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session")
		return
	}

	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 0 || req.Quantity > maxQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 0 and 99")
		return
	}

	// quantity 0 drops the line, same as a delete
	if err := h.carts.UpdateQuantity(ctx, sessionID, productID, req.Quantity); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session")
		return
	}

	productID := chi.URLParam(r, "product_id")

	if err := h.carts.Remove(ctx, sessionID, productID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := getSessionIDFromContext(r.Context())
	if sessionID == "" {
		respondError(w, http.StatusUnauthorized, "no_session", "missing session")
		return
	}

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	cart, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}
