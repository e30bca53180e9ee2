package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/casafurnish/storefront-gateway/pkg/whatsapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	t.Run("Strips formatting from the number", func(t *testing.T) {
		link := whatsapp.Link("+237 654-366-920", "")
		assert.Equal(t, "https://wa.me/237654366920", link)
	})

	t.Run("Escapes the prefilled text", func(t *testing.T) {
		link := whatsapp.Link("237654366920", "Hello! I have a question")

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "Hello! I have a question", parsed.Query().Get("text"))
	})
}

func TestCartMessage(t *testing.T) {
	cart := &models.Cart{
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Oak Chair", Price: 100000, Quantity: 2},
			{ProductID: "p2", Name: "Pine Table", Price: 50000, Quantity: 1},
		},
	}

	msg := whatsapp.CartMessage(cart, "XAF", "Hello! I would like to order:", "Total")

	assert.True(t, strings.HasPrefix(msg, "Hello! I would like to order:"))
	assert.Contains(t, msg, "Oak Chair x2: 200 000 FCFA")
	assert.Contains(t, msg, "Pine Table x1: 50 000 FCFA")
	assert.True(t, strings.HasSuffix(msg, "Total: 250 000 FCFA"))
}

func TestCartLink(t *testing.T) {
	cart := &models.Cart{Items: []models.CartItem{{ProductID: "p1", Name: "Oak Chair", Price: 100, Quantity: 1}}}

	link := whatsapp.CartLink("+237654366920", cart, "XAF", "Hi", "Total")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Contains(t, parsed.Query().Get("text"), "Oak Chair")
}
