// Package mocks provides testify doubles for the service layer, used by the
// handler tests.
package mocks

import (
	"context"

	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, productID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) Submit(ctx context.Context, sessionID, token, locale string, req *models.CheckoutRequest) (*models.Order, error) {
	args := m.Called(ctx, sessionID, token, locale, req)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	if resp, ok := args.Get(0).(*models.LoginResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	if resp, ok := args.Get(0).(*models.LoginResponse); ok {
		return resp, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthService) Profile(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)

	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) ListProducts(ctx context.Context, q models.ListProductsQuery) ([]models.Product, int, error) {
	args := m.Called(ctx, q)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)

	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) ListFeaturedSections(ctx context.Context) ([]models.FeaturedSection, error) {
	args := m.Called(ctx)

	if sections, ok := args.Get(0).([]models.FeaturedSection); ok {
		return sections, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) ListReviews(ctx context.Context, productID string) ([]models.Review, error) {
	args := m.Called(ctx, productID)

	if reviews, ok := args.Get(0).([]models.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, req)

	if review, ok := args.Get(0).(*models.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CatalogService) GetSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)

	if settings, ok := args.Get(0).(*models.Settings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}

type AdminService struct {
	mock.Mock
}

func (m *AdminService) CreateProduct(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, token, req)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) UpdateProduct(ctx context.Context, token, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, token, id, req)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) DeleteProduct(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *AdminService) CreateCategory(ctx context.Context, token string, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, token, req)

	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) UpdateCategory(ctx context.Context, token, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, token, id, req)

	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) DeleteCategory(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *AdminService) CreateFeaturedSection(ctx context.Context, token string, req *models.CreateFeaturedSectionRequest) (*models.FeaturedSection, error) {
	args := m.Called(ctx, token, req)

	if section, ok := args.Get(0).(*models.FeaturedSection); ok {
		return section, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) UpdateFeaturedSection(ctx context.Context, token, id string, req *models.UpdateFeaturedSectionRequest) (*models.FeaturedSection, error) {
	args := m.Called(ctx, token, id, req)

	if section, ok := args.Get(0).(*models.FeaturedSection); ok {
		return section, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) DeleteFeaturedSection(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *AdminService) ListOrders(ctx context.Context, token string, page, pageSize int) ([]models.Order, int, error) {
	args := m.Called(ctx, token, page, pageSize)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *AdminService) GetOrder(ctx context.Context, token, id string) (*models.Order, error) {
	args := m.Called(ctx, token, id)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, token, id, status)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) OrderStats(ctx context.Context, token string) (*models.OrderStats, error) {
	args := m.Called(ctx, token)

	if stats, ok := args.Get(0).(*models.OrderStats); ok {
		return stats, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AdminService) DeleteReview(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *AdminService) UpdateSettings(ctx context.Context, token string, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	args := m.Called(ctx, token, req)

	if settings, ok := args.Get(0).(*models.Settings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendOrderReceipt(ctx context.Context, order *models.Order, locale string) error {
	args := m.Called(ctx, order, locale)
	return args.Error(0)
}
