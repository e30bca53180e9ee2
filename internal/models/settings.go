package models

// Settings is the store-wide configuration record managed from the admin
// dashboard and owned by the commerce API.
type Settings struct {
	StoreName      string  `json:"store_name"`
	ContactEmail   string  `json:"contact_email"`
	WhatsAppNumber string  `json:"whatsapp_number"`
	Currency       string  `json:"currency"`
	ShippingFee    float64 `json:"shipping_fee"`
	Maintenance    bool    `json:"maintenance"`
}

type UpdateSettingsRequest struct {
	StoreName      *string  `json:"store_name,omitempty"      validate:"omitempty,min=2,max=200"`
	ContactEmail   *string  `json:"contact_email,omitempty"   validate:"omitempty,email"`
	WhatsAppNumber *string  `json:"whatsapp_number,omitempty" validate:"omitempty,min=8,max=16"`
	Currency       *string  `json:"currency,omitempty"        validate:"omitempty,len=3"`
	ShippingFee    *float64 `json:"shipping_fee,omitempty"    validate:"omitempty,gte=0"`
	Maintenance    *bool    `json:"maintenance,omitempty"`
}
