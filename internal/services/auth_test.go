package service_test

import (
	"context"
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/clients"
	clientmocks "github.com/casafurnish/storefront-gateway/internal/clients/mocks"
	appErrors "github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	repomocks "github.com/casafurnish/storefront-gateway/internal/repositories/mocks"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	loginReq := &models.LoginRequest{Email: "admin@casafurnish.com", Password: "secret123"}

	t.Run("Successful login returns the upstream session", func(t *testing.T) {
		// Arrange
		authAPI := new(clientmocks.AuthAPI)
		limiter := new(repomocks.RateLimitRepository)
		svc := service.NewAuthService(authAPI, limiter)

		limiter.On("CheckLoginRateLimit", ctx, loginReq.Email).Return(true, 4, 0, nil).Once()
		authAPI.On("Login", ctx, loginReq).Return(&clients.AuthSession{
			Token:     "jwt-token",
			ExpiresIn: 3600,
			User:      models.User{ID: "u1", Email: loginReq.Email, Role: models.RoleAdmin},
		}, nil).Once()

		// Act
		resp, err := svc.Login(ctx, loginReq)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "jwt-token", resp.Token)
		assert.Equal(t, models.RoleAdmin, resp.User.Role)
	})

	t.Run("Rate limited login never reaches upstream", func(t *testing.T) {
		// Arrange
		authAPI := new(clientmocks.AuthAPI)
		limiter := new(repomocks.RateLimitRepository)
		svc := service.NewAuthService(authAPI, limiter)

		limiter.On("CheckLoginRateLimit", ctx, loginReq.Email).Return(false, 0, 540, nil).Once()

		// Act
		resp, err := svc.Login(ctx, loginReq)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 540, resp.RetryAfter)
		authAPI.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Wrong credentials surface remaining tries", func(t *testing.T) {
		// Arrange
		authAPI := new(clientmocks.AuthAPI)
		limiter := new(repomocks.RateLimitRepository)
		svc := service.NewAuthService(authAPI, limiter)

		limiter.On("CheckLoginRateLimit", ctx, loginReq.Email).Return(true, 2, 0, nil).Once()
		authAPI.On("Login", ctx, loginReq).Return(nil, appErrors.UnauthorizedError("Invalid email or password")).Once()

		// Act
		resp, err := svc.Login(ctx, loginReq)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 2, resp.RemainingTries)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Upstream outage propagates as an error", func(t *testing.T) {
		// Arrange
		authAPI := new(clientmocks.AuthAPI)
		limiter := new(repomocks.RateLimitRepository)
		svc := service.NewAuthService(authAPI, limiter)

		limiter.On("CheckLoginRateLimit", ctx, loginReq.Email).Return(true, 4, 0, nil).Once()
		authAPI.On("Login", ctx, loginReq).Return(nil, appErrors.UpstreamUnavailableError("Cannot connect to backend server")).Once()

		// Act
		_, err := svc.Login(ctx, loginReq)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstreamUnavailable, appErr.Code)
	})
}
