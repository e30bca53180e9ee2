package models

import "time"

// CartItem is one storefront product line in a session cart. Display fields
// (name, price, image) are captured at add time and kept first-write-wins.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart keeps items in insertion order so the storefront can render them the
// way the shopper added them. Exactly one entry per product id.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FindItem returns the index of the entry for productID, or -1.
func (c *Cart) FindItem(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}

	return -1
}

func (c *Cart) TotalItems() int {
	var total int

	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// TotalPrice is the exact float sum; rounding happens at display time only.
func (c *Cart) TotalPrice() float64 {
	var total float64

	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

type AddItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name"       validate:"required"`
	Price     float64 `json:"price"      validate:"gte=0"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"gte=0"`
}
