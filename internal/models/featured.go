package models

import "time"

// FeaturedSection is an admin-curated block of products shown on the home page.
type FeaturedSection struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	ProductIDs []string  `json:"product_ids"`
	Position   int       `json:"position"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CreateFeaturedSectionRequest struct {
	Title      string   `json:"title"       validate:"required,min=2,max=200"`
	Subtitle   string   `json:"subtitle"    validate:"max=300"`
	ProductIDs []string `json:"product_ids" validate:"required,min=1"`
	Position   int      `json:"position"    validate:"gte=0"`
	Enabled    bool     `json:"enabled"`
}

type UpdateFeaturedSectionRequest struct {
	Title      *string  `json:"title,omitempty"    validate:"omitempty,min=2,max=200"`
	Subtitle   *string  `json:"subtitle,omitempty" validate:"omitempty,max=300"`
	ProductIDs []string `json:"product_ids,omitempty"`
	Position   *int     `json:"position,omitempty" validate:"omitempty,gte=0"`
	Enabled    *bool    `json:"enabled,omitempty"`
}
