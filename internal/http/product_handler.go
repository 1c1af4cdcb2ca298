package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/query"
)

const featuredLimit = 4

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(c *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

type FacetsResponse struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	spec, err := specFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	products := query.Apply(h.catalog.All(), spec)
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products, Total: len(products)})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	p, ok := h.catalog.Get(productID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Featured(w http.ResponseWriter, r *http.Request) {
	pred := func(p domain.Product) bool { return p.OnSale }
	switch kind := r.URL.Query().Get("kind"); kind {
	case "", "sale":
	case "recommended":
		pred = func(p domain.Product) bool { return p.Recommended }
	default:
		respondError(w, http.StatusBadRequest, "invalid_kind", "kind must be 'sale' or 'recommended'")
		return
	}

	products := query.Featured(h.catalog.All(), pred, featuredLimit)
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products, Total: len(products)})
}

// Facets lists the distinct categories and brands the sidebar filters on.
func (h *ProductHandler) Facets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &FacetsResponse{
		Categories: h.catalog.Categories(),
		Brands:     h.catalog.Brands(),
	})
}

func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if _, ok := h.catalog.Get(productID); !ok {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	products := h.catalog.Related(productID, featuredLimit)
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products, Total: len(products)})
}

type queryError string

func (e queryError) Error() string { return string(e) }

func specFromQuery(r *http.Request) (query.Spec, error) {
	spec := query.NewSpec()
	params := r.URL.Query()

	spec.SearchTerm = params.Get("q")

	if v := params.Get("min_price"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return spec, queryError("min_price must be a number")
		}
		spec.PriceMin = min
	}
	if v := params.Get("max_price"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return spec, queryError("max_price must be a number")
		}
		spec.PriceMax = max
	}

	if v := params.Get("categories"); v != "" {
		spec.Categories = strings.Split(v, ",")
	}
	if v := params.Get("brands"); v != "" {
		spec.Brands = strings.Split(v, ",")
	}

	if v := params.Get("sort"); v != "" {
		spec.Sort = query.Sort(v)
	}

	return spec, nil
}
