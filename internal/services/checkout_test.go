package service_test

import (
	"context"
	"testing"
	"time"

	clientmocks "github.com/casafurnish/storefront-gateway/internal/clients/mocks"
	appErrors "github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	repomocks "github.com/casafurnish/storefront-gateway/internal/repositories/mocks"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	servicemocks "github.com/casafurnish/storefront-gateway/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "bearer-token"

func validCheckout() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Customer: models.Customer{
			Name:    "Ama Nkeng",
			Email:   "ama@example.com",
			Phone:   "+237654366920",
			Address: "12 Rue des Palmiers",
			City:    "Douala",
			Region:  "Littoral",
		},
		PaymentMethod: models.PaymentMethodCashOnDelivery,
	}
}

func loadedCart() *models.Cart {
	cart := emptyCart()
	cart.Items = append(cart.Items,
		models.CartItem{ProductID: "p1", Name: "Oak Chair", Price: 100, Quantity: 2},
		models.CartItem{ProductID: "p2", Name: "Pine Table", Price: 50, Quantity: 1},
	)

	return cart
}

func newCheckoutFixture(clearDelay time.Duration) (*repomocks.CartRepository, *clientmocks.OrderAPI, *servicemocks.NotificationService, service.CheckoutService) {
	cartRepo := new(repomocks.CartRepository)
	orders := new(clientmocks.OrderAPI)
	notifier := new(servicemocks.NotificationService)
	svc := service.NewCheckoutService(cartRepo, orders, notifier, 0, clearDelay)

	return cartRepo, orders, notifier, svc
}

func TestCheckoutService_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing session token is refused before anything else", func(t *testing.T) {
		cartRepo, orders, _, svc := newCheckoutFixture(time.Hour)

		_, err := svc.Submit(ctx, testSession, "", "en", validCheckout())

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		cartRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty cart is refused", func(t *testing.T) {
		cartRepo, orders, _, svc := newCheckoutFixture(time.Hour)
		cartRepo.On("Get", ctx, testSession).Return(emptyCart(), nil).Once()

		_, err := svc.Submit(ctx, testSession, testToken, "en", validCheckout())

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	// One field broken at a time; every case must be refused with no upstream
	// call and no cart mutation.
	t.Run("Invalid customer fields are refused", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*models.CheckoutRequest)
		}{
			{"empty name", func(r *models.CheckoutRequest) { r.Customer.Name = "" }},
			{"malformed email", func(r *models.CheckoutRequest) { r.Customer.Email = "not-an-email" }},
			{"short phone", func(r *models.CheckoutRequest) { r.Customer.Phone = "12345" }},
			{"phone with letters", func(r *models.CheckoutRequest) { r.Customer.Phone = "+2376543abc20" }},
			{"empty address", func(r *models.CheckoutRequest) { r.Customer.Address = "" }},
			{"empty city", func(r *models.CheckoutRequest) { r.Customer.City = "" }},
			{"empty region", func(r *models.CheckoutRequest) { r.Customer.Region = "" }},
			{"unknown payment method", func(r *models.CheckoutRequest) { r.PaymentMethod = "barter" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cartRepo, orders, _, svc := newCheckoutFixture(time.Hour)
				cartRepo.On("Get", ctx, testSession).Return(loadedCart(), nil).Once()

				req := validCheckout()
				tc.mutate(req)

				_, err := svc.Submit(ctx, testSession, testToken, "en", req)

				appErr, ok := appErrors.IsAppError(err)
				require.True(t, ok)
				assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
				orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestCheckoutService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful checkout returns the receipt and clears the cart after the delay", func(t *testing.T) {
		// Arrange
		cartRepo, orders, notifier, svc := newCheckoutFixture(10 * time.Millisecond)

		cartRepo.On("Get", ctx, testSession).Return(loadedCart(), nil).Once()

		placed := &models.Order{ID: "o1", OrderNumber: "CF-1042", Status: models.OrderStatusPending, Total: 250}
		orders.On("Create", ctx, testToken, mock.AnythingOfType("string"), mock.AnythingOfType("*models.CreateOrderRequest")).
			Return(placed, nil).Once()

		receiptSent := make(chan struct{})
		notifier.On("SendOrderReceipt", mock.Anything, placed, "fr").
			Run(func(mock.Arguments) { close(receiptSent) }).
			Return(nil).Once()

		cartCleared := make(chan struct{})
		cartRepo.On("Delete", mock.Anything, testSession).
			Run(func(mock.Arguments) { close(cartCleared) }).
			Return(nil).Once()

		// Act
		order, err := svc.Submit(ctx, testSession, testToken, "fr", validCheckout())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "CF-1042", order.OrderNumber)

		select {
		case <-cartCleared:
		case <-time.After(2 * time.Second):
			t.Fatal("cart was not cleared after the configured delay")
		}

		select {
		case <-receiptSent:
		case <-time.After(2 * time.Second):
			t.Fatal("receipt email was never attempted")
		}

		// The upstream call carries the session cart, not request-supplied items.
		createReq := orders.Calls[0].Arguments.Get(3).(*models.CreateOrderRequest)
		require.Len(t, createReq.Items, 2)
		assert.Equal(t, 2, createReq.Items[0].Quantity)
		assert.InDelta(t, 100, createReq.Items[0].UnitPrice, 0.001)
	})

	t.Run("Upstream failure leaves the cart untouched", func(t *testing.T) {
		// Arrange
		cartRepo, orders, notifier, svc := newCheckoutFixture(time.Millisecond)

		cartRepo.On("Get", ctx, testSession).Return(loadedCart(), nil).Once()
		orders.On("Create", ctx, testToken, mock.AnythingOfType("string"), mock.AnythingOfType("*models.CreateOrderRequest")).
			Return(nil, appErrors.UpstreamError("Server error: 500 Internal Server Error", 502)).Once()

		// Act
		_, err := svc.Submit(ctx, testSession, testToken, "en", validCheckout())

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)

		time.Sleep(50 * time.Millisecond)
		cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Client idempotency key is forwarded unchanged", func(t *testing.T) {
		// Arrange
		cartRepo, orders, notifier, svc := newCheckoutFixture(time.Hour)

		cartRepo.On("Get", ctx, testSession).Return(loadedCart(), nil).Once()
		orders.On("Create", ctx, testToken, "6ba7b810-9dad-41d1-80b4-00c04fd430c8", mock.AnythingOfType("*models.CreateOrderRequest")).
			Return(&models.Order{ID: "o1", OrderNumber: "CF-1"}, nil).Once()
		notifier.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		req := validCheckout()
		req.IdempotencyKey = "6ba7b810-9dad-41d1-80b4-00c04fd430c8"

		// Act
		_, err := svc.Submit(ctx, testSession, testToken, "en", req)

		// Assert
		require.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("Missing idempotency key gets generated", func(t *testing.T) {
		// Arrange
		cartRepo, orders, notifier, svc := newCheckoutFixture(time.Hour)

		cartRepo.On("Get", ctx, testSession).Return(loadedCart(), nil).Once()
		orders.On("Create", ctx, testToken, mock.MatchedBy(func(key string) bool { return key != "" }), mock.AnythingOfType("*models.CreateOrderRequest")).
			Return(&models.Order{ID: "o1", OrderNumber: "CF-2"}, nil).Once()
		notifier.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		// Act
		_, err := svc.Submit(ctx, testSession, testToken, "en", validCheckout())

		// Assert
		require.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("Notes are sanitized before the upstream call", func(t *testing.T) {
		// Arrange
		cartRepo, orders, notifier, svc := newCheckoutFixture(time.Hour)

		cartRepo.On("Get", ctx, testSession).Return(loadedCart(), nil).Once()
		orders.On("Create", ctx, testToken, mock.AnythingOfType("string"), mock.MatchedBy(func(r *models.CreateOrderRequest) bool {
			return r.Notes == "leave at the gate"
		})).Return(&models.Order{ID: "o1", OrderNumber: "CF-3"}, nil).Once()
		notifier.On("SendOrderReceipt", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		req := validCheckout()
		req.Notes = "<script>alert(1)</script>leave at the gate"

		// Act
		_, err := svc.Submit(ctx, testSession, testToken, "en", req)

		// Assert
		require.NoError(t, err)
		orders.AssertExpectations(t)
	})
}
