package query

import (
	"math"
	"sort"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Sort string

const (
	SortDefault   Sort = "default"
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
	SortRating    Sort = "rating"
)

// Spec describes one storefront listing query. Price bounds are applied
// literally and inclusively: a spec with PriceMin > PriceMax matches nothing.
type Spec struct {
	SearchTerm string
	PriceMin   float64
	PriceMax   float64
	Categories []string
	Brands     []string
	Sort       Sort
}

// NewSpec returns a spec that matches the whole catalog in catalog order.
func NewSpec() Spec {
	return Spec{PriceMax: math.MaxFloat64, Sort: SortDefault}
}

// Apply runs the filter pipeline and the chosen sort over products, returning
// a new slice. The input is never modified. Every sort is stable, so products
// that tie keep their prior relative order.
func Apply(products []domain.Product, spec Spec) []domain.Product {
	results := make([]domain.Product, 0, len(products))

	term := strings.ToLower(spec.SearchTerm)
	for _, p := range products {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		price := domain.EffectivePrice(p)
		if price < spec.PriceMin || price > spec.PriceMax {
			continue
		}
		if len(spec.Categories) > 0 && !contains(spec.Categories, p.Category) {
			continue
		}
		if len(spec.Brands) > 0 && !contains(spec.Brands, p.Brand) {
			continue
		}
		results = append(results, p)
	}

	sortProducts(results, spec.Sort)
	return results
}

// Featured returns the first limit products matching pred, in catalog order.
func Featured(products []domain.Product, pred func(domain.Product) bool, limit int) []domain.Product {
	results := make([]domain.Product, 0, limit)
	for _, p := range products {
		if len(results) == limit {
			break
		}
		if pred(p) {
			results = append(results, p)
		}
	}
	return results
}

func matchesSearch(p domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Brand), term)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sortProducts(products []domain.Product, s Sort) {
	switch s {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return domain.EffectivePrice(products[i]) < domain.EffectivePrice(products[j])
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return domain.EffectivePrice(products[i]) > domain.EffectivePrice(products[j])
		})
	case SortNameAsc:
		c := newCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) < 0
		})
	case SortNameDesc:
		c := newCollator()
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) > 0
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default:
		// unknown sort values fall back to catalog order
	}
}

// Title sorts are locale-aware; the storefront ships in Spanish.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish)
}
