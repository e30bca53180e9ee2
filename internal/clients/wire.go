package clients

import (
	"fmt"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
)

// remoteID absorbs the commerce API's two id spellings ("_id" from its Mongo
// heritage, "id" from newer endpoints) so no other code ever sees the split.
type remoteID struct {
	Mongo string `json:"_id"`
	Plain string `json:"id"`
}

func (r remoteID) value() (string, error) {
	if r.Plain != "" {
		return r.Plain, nil
	}

	if r.Mongo != "" {
		return r.Mongo, nil
	}

	return "", fmt.Errorf("payload is missing an id")
}

func malformed(resource string, err error) error {
	return errors.UpstreamError("Malformed "+resource+" payload from backend", 502).WithError(err)
}

type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type productPayload struct {
	remoteID
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *productPayload) toModel() (models.Product, error) {
	id, err := p.value()
	if err != nil {
		return models.Product{}, malformed("product", err)
	}

	return models.Product{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Images:      p.Images,
		Category:    p.Category,
		InStock:     p.InStock,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

type categoryPayload struct {
	remoteID
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *categoryPayload) toModel() (models.Category, error) {
	id, err := c.value()
	if err != nil {
		return models.Category{}, malformed("category", err)
	}

	return models.Category{
		ID:          id,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}, nil
}

type orderItemPayload struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image"`
}

type orderPayload struct {
	remoteID
	OrderNumber   string               `json:"order_number"`
	Status        models.OrderStatus   `json:"status"`
	Items         []orderItemPayload   `json:"items"`
	Customer      models.Customer      `json:"customer"`
	Subtotal      float64              `json:"subtotal"`
	Shipping      float64              `json:"shipping"`
	Total         float64              `json:"total"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func (o *orderPayload) toModel() (models.Order, error) {
	id, err := o.value()
	if err != nil {
		return models.Order{}, malformed("order", err)
	}

	items := make([]models.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Image:     item.Image,
		})
	}

	return models.Order{
		ID:            id,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		Items:         items,
		Customer:      o.Customer,
		Subtotal:      o.Subtotal,
		Shipping:      o.Shipping,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}, nil
}

type reviewPayload struct {
	remoteID
	ProductID string    `json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *reviewPayload) toModel() (models.Review, error) {
	id, err := r.value()
	if err != nil {
		return models.Review{}, malformed("review", err)
	}

	return models.Review{
		ID:        id,
		ProductID: r.ProductID,
		Author:    r.Author,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}, nil
}

type featuredSectionPayload struct {
	remoteID
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	ProductIDs []string  `json:"product_ids"`
	Position   int       `json:"position"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (f *featuredSectionPayload) toModel() (models.FeaturedSection, error) {
	id, err := f.value()
	if err != nil {
		return models.FeaturedSection{}, malformed("featured section", err)
	}

	return models.FeaturedSection{
		ID:         id,
		Title:      f.Title,
		Subtitle:   f.Subtitle,
		ProductIDs: f.ProductIDs,
		Position:   f.Position,
		Enabled:    f.Enabled,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}, nil
}

type userPayload struct {
	remoteID
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *userPayload) toModel() (models.User, error) {
	id, err := u.value()
	if err != nil {
		return models.User{}, malformed("user", err)
	}

	return models.User{
		ID:        id,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}, nil
}
