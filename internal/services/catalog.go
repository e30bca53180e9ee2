package service

import (
	"context"
	"log/slog"

	"github.com/casafurnish/storefront-gateway/internal/cache"
	"github.com/casafurnish/storefront-gateway/internal/clients"
	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// CatalogService is the storefront's read side: products, categories,
// featured sections, reviews, settings. Reads go through the Redis cache so
// a browsing burst doesn't hammer the commerce API.
type CatalogService interface {
	ListProducts(ctx context.Context, q models.ListProductsQuery) ([]models.Product, int, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListFeaturedSections(ctx context.Context) ([]models.FeaturedSection, error)
	ListReviews(ctx context.Context, productID string) ([]models.Review, error)
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	GetSettings(ctx context.Context) (*models.Settings, error)
}

type catalogService struct {
	products   clients.ProductAPI
	categories clients.CategoryAPI
	featured   clients.FeaturedSectionAPI
	reviews    clients.ReviewAPI
	settings   clients.SettingsAPI
	cache      cache.Cache
	sanitizer  *bluemonday.Policy
}

func NewCatalogService(products clients.ProductAPI, categories clients.CategoryAPI, featured clients.FeaturedSectionAPI, reviews clients.ReviewAPI, settings clients.SettingsAPI, cacheStore cache.Cache) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		featured:   featured,
		reviews:    reviews,
		settings:   settings,
		cache:      cacheStore,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

func (s *catalogService) ListProducts(ctx context.Context, q models.ListProductsQuery) ([]models.Product, int, error) {

	products, total, err := s.products.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, id)

	var cached models.Product

	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Product cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if found {
		return &cached, nil
	}

	product, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		slog.Warn("Product cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	key := cache.Key(cache.CategoryKeyPrefix, "all")

	var cached []models.Category

	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Category cache read failed", slog.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, categories, 0); err != nil {
		slog.Warn("Category cache write failed", slog.String("error", err.Error()))
	}

	return categories, nil
}

func (s *catalogService) ListFeaturedSections(ctx context.Context) ([]models.FeaturedSection, error) {

	key := cache.Key(cache.FeaturedKeyPrefix, "all")

	var cached []models.FeaturedSection

	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Featured cache read failed", slog.String("error", err.Error()))
	} else if found {
		return cached, nil
	}

	sections, err := s.featured.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, sections, 0); err != nil {
		slog.Warn("Featured cache write failed", slog.String("error", err.Error()))
	}

	return sections, nil
}

func (s *catalogService) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviews.ListByProduct(ctx, productID)
}

func (s *catalogService) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {

	req.Comment = s.sanitizer.Sanitize(req.Comment)
	req.Author = s.sanitizer.Sanitize(req.Author)

	return s.reviews.Create(ctx, req)
}

func (s *catalogService) GetSettings(ctx context.Context) (*models.Settings, error) {

	key := cache.Key(cache.SettingsKeyPrefix, "store")

	var cached models.Settings

	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Settings cache read failed", slog.String("error", err.Error()))
	} else if found {
		return &cached, nil
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, settings, 0); err != nil {
		slog.Warn("Settings cache write failed", slog.String("error", err.Error()))
	}

	return settings, nil
}
