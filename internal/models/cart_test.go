package models_test

import (
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCartTotals(t *testing.T) {
	cart := &models.Cart{
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Oak Chair", Price: 100, Quantity: 2},
			{ProductID: "p2", Name: "Pine Table", Price: 50, Quantity: 1},
		},
	}

	assert.Equal(t, 3, cart.TotalItems())
	assert.InDelta(t, 250.0, cart.TotalPrice(), 0.001)
}

func TestCartFindItem(t *testing.T) {
	cart := &models.Cart{
		Items: []models.CartItem{
			{ProductID: "p1"},
			{ProductID: "p2"},
		},
	}

	assert.Equal(t, 1, cart.FindItem("p2"))
	assert.Equal(t, -1, cart.FindItem("p9"))
}

func TestEmptyCartTotals(t *testing.T) {
	cart := &models.Cart{}

	assert.Equal(t, 0, cart.TotalItems())
	assert.Zero(t, cart.TotalPrice())
}
