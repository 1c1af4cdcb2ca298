package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice_OnSale(t *testing.T) {
	sale := 800.0
	p := Product{ID: "1", Price: 1000, SalePrice: &sale, OnSale: true}
	assert.Equal(t, 800.0, EffectivePrice(p))
}

func TestEffectivePrice_NotOnSale(t *testing.T) {
	sale := 800.0
	p := Product{ID: "1", Price: 1000, SalePrice: &sale, OnSale: false}
	assert.Equal(t, 1000.0, EffectivePrice(p))
}

func TestEffectivePrice_OnSaleWithoutSalePrice(t *testing.T) {
	p := Product{ID: "1", Price: 1000, OnSale: true}
	assert.Equal(t, 1000.0, EffectivePrice(p))
}

func TestEffectivePrice_ZeroSalePrice(t *testing.T) {
	// 0 is a legitimate sale price and must not fall back to the base price
	sale := 0.0
	p := Product{ID: "1", Price: 1000, SalePrice: &sale, OnSale: true}
	assert.Equal(t, 0.0, EffectivePrice(p))
}

func TestTotalAmount_UsesEffectivePrice(t *testing.T) {
	sale := 800.0
	cart := &Cart{
		Lines: []CartLine{
			{Product: Product{ID: "1", Price: 1000, SalePrice: &sale, OnSale: true}, Quantity: 2},
		},
	}
	assert.Equal(t, 1600.0, cart.TotalAmount())
	assert.Equal(t, 2, cart.TotalItems())
}

func TestTotalAmount_EmptyCart(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, 0.0, cart.TotalAmount())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestClone_DetachesLines(t *testing.T) {
	cart := &Cart{
		Lines: []CartLine{
			{Product: Product{ID: "1", Price: 100}, Quantity: 1},
		},
	}

	clone := cart.Clone()
	cart.Lines[0].Quantity = 99

	assert.Equal(t, 1, clone.Lines[0].Quantity)
}
