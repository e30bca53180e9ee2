package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/casafurnish/storefront-gateway/internal/cache"
	"github.com/casafurnish/storefront-gateway/internal/clients"
	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// AdminService is the dashboard's write side. Every mutation goes straight to
// the commerce API; the only local effect is dropping the stale cache entry
// so the storefront re-reads fresh data.
type AdminService interface {
	CreateProduct(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error

	CreateCategory(ctx context.Context, token string, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, token, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	CreateFeaturedSection(ctx context.Context, token string, req *models.CreateFeaturedSectionRequest) (*models.FeaturedSection, error)
	UpdateFeaturedSection(ctx context.Context, token, id string, req *models.UpdateFeaturedSectionRequest) (*models.FeaturedSection, error)
	DeleteFeaturedSection(ctx context.Context, token, id string) error

	ListOrders(ctx context.Context, token string, page, pageSize int) ([]models.Order, int, error)
	GetOrder(ctx context.Context, token, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error)
	OrderStats(ctx context.Context, token string) (*models.OrderStats, error)

	DeleteReview(ctx context.Context, token, id string) error
	UpdateSettings(ctx context.Context, token string, req *models.UpdateSettingsRequest) (*models.Settings, error)
}

type adminService struct {
	products   clients.ProductAPI
	categories clients.CategoryAPI
	featured   clients.FeaturedSectionAPI
	orders     clients.OrderAPI
	reviews    clients.ReviewAPI
	settings   clients.SettingsAPI
	cache      cache.Cache
	sanitizer  *bluemonday.Policy
}

func NewAdminService(products clients.ProductAPI, categories clients.CategoryAPI, featured clients.FeaturedSectionAPI, orders clients.OrderAPI, reviews clients.ReviewAPI, settings clients.SettingsAPI, cacheStore cache.Cache) AdminService {
	return &adminService{
		products:   products,
		categories: categories,
		featured:   featured,
		orders:     orders,
		reviews:    reviews,
		settings:   settings,
		cache:      cacheStore,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

func (s *adminService) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			slog.Warn("Cache invalidation failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

func (s *adminService) CreateProduct(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error) {

	req.Description = s.sanitizer.Sanitize(req.Description)

	product, err := s.products.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (s *adminService) UpdateProduct(ctx context.Context, token, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	if req.Description != nil {
		sanitized := s.sanitizer.Sanitize(*req.Description)
		req.Description = &sanitized
	}

	product, err := s.products.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.Key(cache.ProductKeyPrefix, id))

	return product, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, token, id string) error {

	if err := s.products.Delete(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.Key(cache.ProductKeyPrefix, id), cache.Key(cache.FeaturedKeyPrefix, "all"))

	return nil
}

func (s *adminService) CreateCategory(ctx context.Context, token string, req *models.CreateCategoryRequest) (*models.Category, error) {

	req.Description = s.sanitizer.Sanitize(req.Description)

	category, err := s.categories.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.Key(cache.CategoryKeyPrefix, "all"))

	return category, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, token, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {

	if req.Description != nil {
		sanitized := s.sanitizer.Sanitize(*req.Description)
		req.Description = &sanitized
	}

	category, err := s.categories.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.Key(cache.CategoryKeyPrefix, "all"))

	return category, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, token, id string) error {

	if err := s.categories.Delete(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.Key(cache.CategoryKeyPrefix, "all"))

	return nil
}

func (s *adminService) CreateFeaturedSection(ctx context.Context, token string, req *models.CreateFeaturedSectionRequest) (*models.FeaturedSection, error) {

	section, err := s.featured.Create(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.Key(cache.FeaturedKeyPrefix, "all"))

	return section, nil
}

func (s *adminService) UpdateFeaturedSection(ctx context.Context, token, id string, req *models.UpdateFeaturedSectionRequest) (*models.FeaturedSection, error) {

	section, err := s.featured.Update(ctx, token, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.Key(cache.FeaturedKeyPrefix, "all"))

	return section, nil
}

func (s *adminService) DeleteFeaturedSection(ctx context.Context, token, id string) error {

	if err := s.featured.Delete(ctx, token, id); err != nil {
		return err
	}

	s.invalidate(ctx, cache.Key(cache.FeaturedKeyPrefix, "all"))

	return nil
}

func (s *adminService) ListOrders(ctx context.Context, token string, page, pageSize int) ([]models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	return s.orders.List(ctx, token, page, pageSize)
}

func (s *adminService) GetOrder(ctx context.Context, token, id string) (*models.Order, error) {
	return s.orders.Get(ctx, token, id)
}

// UpdateOrderStatus enforces the forward-only lifecycle before calling
// upstream: an order can't move backwards, and nothing leaves a terminal
// state except via cancellation of a non-terminal one.
func (s *adminService) UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error) {

	order, err := s.orders.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, errors.ValidationError(fmt.Sprintf("Cannot transition order from '%s' to '%s'", order.Status, status))
	}

	return s.orders.UpdateStatus(ctx, token, id, status)
}

func (s *adminService) OrderStats(ctx context.Context, token string) (*models.OrderStats, error) {
	return s.orders.Stats(ctx, token)
}

func (s *adminService) DeleteReview(ctx context.Context, token, id string) error {
	return s.reviews.Delete(ctx, token, id)
}

func (s *adminService) UpdateSettings(ctx context.Context, token string, req *models.UpdateSettingsRequest) (*models.Settings, error) {

	settings, err := s.settings.Update(ctx, token, req)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, cache.Key(cache.SettingsKeyPrefix, "store"))

	return settings, nil
}
