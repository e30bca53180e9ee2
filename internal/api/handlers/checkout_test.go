package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/api/handlers"
	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	servicemocks "github.com/casafurnish/storefront-gateway/internal/services/mocks"
	"github.com/casafurnish/storefront-gateway/internal/testutils"
	"github.com/casafurnish/storefront-gateway/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutBody(t *testing.T) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(models.CheckoutRequest{
		Customer: models.Customer{
			Name:    "Ama Nkeng",
			Email:   "ama@example.com",
			Phone:   "+237654366920",
			Address: "12 Rue des Cocotiers",
			City:    "Douala",
			Region:  "Littoral",
		},
		PaymentMethod: models.PaymentMethodCashOnDelivery,
	})
	require.NoError(t, err)

	return bytes.NewReader(body)
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	t.Run("Places the order and returns the receipt", func(t *testing.T) {
		// Arrange
		checkoutService := new(servicemocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(checkoutService)

		order := &models.Order{ID: "o1", OrderNumber: "CF-1042", Status: models.OrderStatusPending}
		checkoutService.On("Submit", mock.Anything, "session-abc", "test-token", mock.Anything, mock.MatchedBy(func(req *models.CheckoutRequest) bool {
			return req.Customer.Email == "ama@example.com"
		})).Return(order, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", checkoutBody(t), "user-1", nil)
		req.Header.Set(handlers.SessionHeader, "session-abc")
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Success bool         `json:"success"`
			Data    models.Order `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "CF-1042", resp.Data.OrderNumber)

		checkoutService.AssertExpectations(t)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		// Arrange
		checkoutService := new(servicemocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(checkoutService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/checkout", checkoutBody(t), nil)
		req.Header.Set(handlers.SessionHeader, "session-abc")
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp response.APIResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, errors.ErrCodeUnauthorized, resp.Error.Code)

		checkoutService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Requires the session header", func(t *testing.T) {
		// Arrange
		checkoutService := new(servicemocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(checkoutService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", checkoutBody(t), "user-1", nil)
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		checkoutService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejects an incomplete customer form", func(t *testing.T) {
		// Arrange
		checkoutService := new(servicemocks.CheckoutService)
		handler := handlers.NewCheckoutHandler(checkoutService)

		body, _ := json.Marshal(models.CheckoutRequest{PaymentMethod: models.PaymentMethodCard})
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/checkout", bytes.NewReader(body), "user-1", nil)
		req.Header.Set(handlers.SessionHeader, "session-abc")
		rec := httptest.NewRecorder()

		// Act
		handler.Checkout().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		checkoutService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
