// Package whatsapp builds wa.me deep links for the storefront's
// order-by-chat flow. Pure URL construction, no API behind it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/casafurnish/storefront-gateway/pkg/currency"
)

const baseURL = "https://wa.me/"

// normalizeNumber strips everything but digits; wa.me wants the international
// number without "+" or separators.
func normalizeNumber(number string) string {
	var b strings.Builder

	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Link builds a deep link opening a chat with number, prefilled with text.
func Link(number, text string) string {
	u := baseURL + normalizeNumber(number)

	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}

	return u
}

// CartMessage renders the cart as an order message, one line per item.
func CartMessage(cart *models.Cart, currencyCode, intro, totalLabel string) string {

	var b strings.Builder

	b.WriteString(intro)
	b.WriteString("\n\n")

	for _, item := range cart.Items {
		b.WriteString(fmt.Sprintf("• %s x%d: %s\n", item.Name, item.Quantity, currency.Format(item.Price*float64(item.Quantity), currencyCode)))
	}

	b.WriteString("\n")
	b.WriteString(totalLabel)
	b.WriteString(": ")
	b.WriteString(currency.Format(cart.TotalPrice(), currencyCode))

	return b.String()
}

// CartLink is the composition used by the storefront's "order on WhatsApp"
// button.
func CartLink(number string, cart *models.Cart, currencyCode, intro, totalLabel string) string {
	return Link(number, CartMessage(cart, currencyCode, intro, totalLabel))
}
