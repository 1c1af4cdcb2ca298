package catalog

import (
	"context"

	"github.com/fjod/go_storefront/internal/domain"
)

// Catalog is the read-only in-memory product collection. It is built once at
// startup and never mutated, so it is safe to share across goroutines.
type Catalog struct {
	products   []domain.Product
	byID       map[string]int
	categories []string
	brands     []string
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}

	seenCategory := make(map[string]bool)
	seenBrand := make(map[string]bool)
	for i, p := range products {
		c.byID[p.ID] = i
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			c.categories = append(c.categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			c.brands = append(c.brands, p.Brand)
		}
	}
	return c
}

// Load builds the catalog from the repository. Called once in main.
func Load(ctx context.Context, repo *Repository) (*Catalog, error) {
	products, err := repo.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return New(products), nil
}

// All returns the products in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) All() []domain.Product {
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Get reports a miss with ok=false; an unknown id is a presentational
// "not found", never an error.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Categories lists distinct categories in catalog order, for filter UIs.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Brands lists distinct brands in catalog order.
func (c *Catalog) Brands() []string {
	return c.brands
}

// Related returns up to limit products sharing the category or brand of the
// given product, in catalog order, excluding the product itself.
func (c *Catalog) Related(id string, limit int) []domain.Product {
	p, ok := c.Get(id)
	if !ok {
		return nil
	}

	related := make([]domain.Product, 0, limit)
	for _, candidate := range c.products {
		if len(related) == limit {
			break
		}
		if candidate.ID == p.ID {
			continue
		}
		if candidate.Category == p.Category || candidate.Brand == p.Brand {
			related = append(related, candidate)
		}
	}
	return related
}
