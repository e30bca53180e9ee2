package models

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Images      []string  `json:"images,omitempty"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Image       string   `json:"image"       validate:"required,url"`
	Images      []string `json:"images"      validate:"omitempty,dive,url"`
	Category    string   `json:"category"    validate:"required"`
	InStock     bool     `json:"in_stock"`
	Featured    bool     `json:"featured"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gt=0"`
	Image       *string  `json:"image,omitempty"       validate:"omitempty,url"`
	Images      []string `json:"images,omitempty"      validate:"omitempty,dive,url"`
	Category    *string  `json:"category,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Slug        string `json:"slug"        validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"image"       validate:"omitempty,url"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=2,max=100"`
	Slug        *string `json:"slug,omitempty"        validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Image       *string `json:"image,omitempty"       validate:"omitempty,url"`
}

type ListProductsQuery struct {
	Category string
	Search   string
	Page     int
	PageSize int
}
