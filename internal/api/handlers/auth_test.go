package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/api/handlers"
	"github.com/casafurnish/storefront-gateway/internal/models"
	servicemocks "github.com/casafurnish/storefront-gateway/internal/services/mocks"
	"github.com/casafurnish/storefront-gateway/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func loginBody(t *testing.T) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(models.LoginRequest{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)

	return bytes.NewReader(body)
}

func TestAuthHandler_Login(t *testing.T) {
	decode := func(t *testing.T, rec *httptest.ResponseRecorder) models.LoginResponse {
		t.Helper()

		var resp struct {
			Data models.LoginResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		return resp.Data
	}

	t.Run("Successful login returns the session", func(t *testing.T) {
		// Arrange
		authService := new(servicemocks.AuthService)
		handler := handlers.NewAuthHandler(authService)

		authService.On("Login", mock.Anything, mock.MatchedBy(func(req *models.LoginRequest) bool {
			return req.Email == "admin@example.com"
		})).Return(&models.LoginResponse{Success: true, Token: "jwt-token", ExpiresIn: 3600}, nil).Once()

		rec := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rec, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", loginBody(t), nil))

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "jwt-token", decode(t, rec).Token)

		authService.AssertExpectations(t)
	})

	t.Run("Rate limited login is a 429", func(t *testing.T) {
		// Arrange
		authService := new(servicemocks.AuthService)
		handler := handlers.NewAuthHandler(authService)

		authService.On("Login", mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, RetryAfter: 540, Message: "Too many attempts"}, nil).Once()

		rec := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rec, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", loginBody(t), nil))

		// Assert
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, 540, decode(t, rec).RetryAfter)
	})

	t.Run("Wrong credentials are a 401 with remaining tries", func(t *testing.T) {
		// Arrange
		authService := new(servicemocks.AuthService)
		handler := handlers.NewAuthHandler(authService)

		authService.On("Login", mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, RemainingTries: 2, Message: "Invalid credentials"}, nil).Once()

		rec := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rec, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", loginBody(t), nil))

		// Assert
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, 2, decode(t, rec).RemainingTries)
	})

	t.Run("Malformed email never reaches the service", func(t *testing.T) {
		// Arrange
		authService := new(servicemocks.AuthService)
		handler := handlers.NewAuthHandler(authService)

		body, _ := json.Marshal(models.LoginRequest{Email: "not-an-email", Password: "secret"})
		rec := httptest.NewRecorder()

		// Act
		handler.Login().ServeHTTP(rec, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body), nil))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authService.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	// Always a 200 so the endpoint cannot be used to probe for accounts.
	authService := new(servicemocks.AuthService)
	handler := handlers.NewAuthHandler(authService)

	authService.On("ResetPassword", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	body, _ := json.Marshal(models.ResetPasswordRequest{Email: "ghost@example.com"})
	rec := httptest.NewRecorder()

	handler.ResetPassword().ServeHTTP(rec, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/reset-password", bytes.NewReader(body), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
