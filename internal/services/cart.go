package service

import (
	"context"
	"slices"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	repository "github.com/casafurnish/storefront-gateway/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to load cart").WithError(err)
	}

	return cart, nil
}

// AddItem appends a new line with quantity 1, or bumps the quantity of an
// existing line by 1. Display fields of an existing line are first-write-wins:
// a later add with a different price or name does not rewrite them.
func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to load cart").WithError(err)
	}

	if idx := cart.FindItem(req.ProductID); idx >= 0 {
		cart.Items[idx].Quantity++
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: req.ProductID,
			Name:      req.Name,
			Price:     req.Price,
			Image:     req.Image,
			Category:  req.Category,
			Quantity:  1,
		})
	}

	cart.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to save cart").WithError(err)
	}

	return cart, nil
}

// UpdateQuantity sets the quantity outright; zero or less removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to load cart").WithError(err)
	}

	idx := cart.FindItem(req.ProductID)
	if idx < 0 {
		return nil, errors.BadRequestError("Item not found in the cart")
	}

	if req.Quantity <= 0 {
		cart.Items = slices.Delete(cart.Items, idx, idx+1)
	} else {
		cart.Items[idx].Quantity = req.Quantity
	}

	cart.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to save cart").WithError(err)
	}

	return cart, nil
}

// RemoveItem deletes the line if present; removing an absent product is a
// no-op, not an error.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.InternalError("Failed to load cart").WithError(err)
	}

	idx := cart.FindItem(productID)
	if idx < 0 {
		return cart, nil
	}

	cart.Items = slices.Delete(cart.Items, idx, idx+1)
	cart.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, errors.InternalError("Failed to save cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return errors.InternalError("Failed to clear cart").WithError(err)
	}

	return nil
}
