package models

import "time"

type OrderStatus string

type PaymentMethod string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodMobileMoney    PaymentMethod = "mobile_money"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

// CanTransitionTo enforces the forward-only order lifecycle. Cancellation is
// allowed from any non-terminal status.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return false
	}

	if next == OrderStatusCancelled {
		return s != OrderStatusDelivered && s != OrderStatusCancelled
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// Customer is the transient checkout form data; it is never stored here, only
// embedded in the order the commerce API creates.
type Customer struct {
	Name       string `json:"name"        validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	Phone      string `json:"phone"       validate:"required"`
	Address    string `json:"address"     validate:"required"`
	City       string `json:"city"        validate:"required"`
	Region     string `json:"region"      validate:"required"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"   validate:"required,min=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Image     string  `json:"image"`
}

// Order is owned by the commerce API; this service only ever holds the echoed
// snapshot it gets back.
type Order struct {
	ID            string        `json:"id"`
	OrderNumber   string        `json:"order_number"`
	Status        OrderStatus   `json:"status"`
	Items         []OrderItem   `json:"items"`
	Customer      Customer      `json:"customer"`
	Subtotal      float64       `json:"subtotal"`
	Shipping      float64       `json:"shipping"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CheckoutRequest is what the storefront submits; cart items are read from the
// session cart, never trusted from the request body.
type CheckoutRequest struct {
	Customer       Customer      `json:"customer"        validate:"required"`
	PaymentMethod  PaymentMethod `json:"payment_method"  validate:"required,oneof=card mobile_money cash_on_delivery"`
	Notes          string        `json:"notes"           validate:"max=2000"`
	IdempotencyKey string        `json:"idempotency_key" validate:"omitempty,uuid4"`
}

// CreateOrderRequest is the wire shape sent to the commerce API.
type CreateOrderRequest struct {
	Items         []OrderItem   `json:"items"`
	Customer      Customer      `json:"customer"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Shipping      float64       `json:"shipping"`
	Notes         string        `json:"notes,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled"`
}

type OrderStats struct {
	TotalOrders  int                 `json:"total_orders"`
	TotalRevenue float64             `json:"total_revenue"`
	ByStatus     map[OrderStatus]int `json:"by_status"`
}
