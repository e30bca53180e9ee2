// Package mocks provides testify doubles for the upstream API clients.
package mocks

import (
	"context"

	"github.com/casafurnish/storefront-gateway/internal/clients"
	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderAPI struct {
	mock.Mock
}

func (m *OrderAPI) Create(ctx context.Context, token, idempotencyKey string, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, token, idempotencyKey, req)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderAPI) Get(ctx context.Context, token, id string) (*models.Order, error) {
	args := m.Called(ctx, token, id)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderAPI) List(ctx context.Context, token string, page, pageSize int) ([]models.Order, int, error) {
	args := m.Called(ctx, token, page, pageSize)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *OrderAPI) UpdateStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, token, id, status)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderAPI) Stats(ctx context.Context, token string) (*models.OrderStats, error) {
	args := m.Called(ctx, token)

	if stats, ok := args.Get(0).(*models.OrderStats); ok {
		return stats, args.Error(1)
	}

	return nil, args.Error(1)
}

type ProductAPI struct {
	mock.Mock
}

func (m *ProductAPI) List(ctx context.Context, q models.ListProductsQuery) ([]models.Product, int, error) {
	args := m.Called(ctx, q)

	if products, ok := args.Get(0).([]models.Product); ok {
		return products, args.Int(1), args.Error(2)
	}

	return nil, args.Int(1), args.Error(2)
}

func (m *ProductAPI) Get(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductAPI) Create(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, token, req)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductAPI) Update(ctx context.Context, token, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, token, id, req)

	if product, ok := args.Get(0).(*models.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type CategoryAPI struct {
	mock.Mock
}

func (m *CategoryAPI) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)

	if categories, ok := args.Get(0).([]models.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryAPI) Create(ctx context.Context, token string, req *models.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, token, req)

	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryAPI) Update(ctx context.Context, token, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, token, id, req)

	if category, ok := args.Get(0).(*models.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CategoryAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type FeaturedSectionAPI struct {
	mock.Mock
}

func (m *FeaturedSectionAPI) List(ctx context.Context) ([]models.FeaturedSection, error) {
	args := m.Called(ctx)

	if sections, ok := args.Get(0).([]models.FeaturedSection); ok {
		return sections, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *FeaturedSectionAPI) Create(ctx context.Context, token string, req *models.CreateFeaturedSectionRequest) (*models.FeaturedSection, error) {
	args := m.Called(ctx, token, req)

	if section, ok := args.Get(0).(*models.FeaturedSection); ok {
		return section, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *FeaturedSectionAPI) Update(ctx context.Context, token, id string, req *models.UpdateFeaturedSectionRequest) (*models.FeaturedSection, error) {
	args := m.Called(ctx, token, id, req)

	if section, ok := args.Get(0).(*models.FeaturedSection); ok {
		return section, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *FeaturedSectionAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type ReviewAPI struct {
	mock.Mock
}

func (m *ReviewAPI) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	args := m.Called(ctx, productID)

	if reviews, ok := args.Get(0).([]models.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewAPI) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, req)

	if review, ok := args.Get(0).(*models.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ReviewAPI) Delete(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

type SettingsAPI struct {
	mock.Mock
}

func (m *SettingsAPI) Get(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)

	if settings, ok := args.Get(0).(*models.Settings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *SettingsAPI) Update(ctx context.Context, token string, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	args := m.Called(ctx, token, req)

	if settings, ok := args.Get(0).(*models.Settings); ok {
		return settings, args.Error(1)
	}

	return nil, args.Error(1)
}

type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Login(ctx context.Context, req *models.LoginRequest) (*clients.AuthSession, error) {
	args := m.Called(ctx, req)

	if session, ok := args.Get(0).(*clients.AuthSession); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthAPI) Register(ctx context.Context, req *models.RegisterRequest) (*clients.AuthSession, error) {
	args := m.Called(ctx, req)

	if session, ok := args.Get(0).(*clients.AuthSession); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthAPI) Me(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)

	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthAPI) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
