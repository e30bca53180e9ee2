package models_test

import (
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{"pending to confirmed", models.OrderStatusPending, models.OrderStatusConfirmed, true},
		{"confirmed to processing", models.OrderStatusConfirmed, models.OrderStatusProcessing, true},
		{"processing to shipped", models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{"shipped to delivered", models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{"pending can be cancelled", models.OrderStatusPending, models.OrderStatusCancelled, true},
		{"shipped can be cancelled", models.OrderStatusShipped, models.OrderStatusCancelled, true},
		{"no skipping ahead", models.OrderStatusPending, models.OrderStatusShipped, false},
		{"no moving backwards", models.OrderStatusShipped, models.OrderStatusProcessing, false},
		{"delivered is terminal", models.OrderStatusDelivered, models.OrderStatusCancelled, false},
		{"cancelled is terminal", models.OrderStatusCancelled, models.OrderStatusConfirmed, false},
		{"cancelled cannot be re-cancelled", models.OrderStatusCancelled, models.OrderStatusCancelled, false},
		{"no self transition", models.OrderStatusPending, models.OrderStatusPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}
