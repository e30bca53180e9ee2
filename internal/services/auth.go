package service

import (
	"context"

	"github.com/casafurnish/storefront-gateway/internal/clients"
	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	repository "github.com/casafurnish/storefront-gateway/internal/repositories"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error)
	Profile(ctx context.Context, token string) (*models.User, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

type authService struct {
	auth        clients.AuthAPI
	rateLimiter repository.RateLimitRepository
}

func NewAuthService(auth clients.AuthAPI, rateLimiter repository.RateLimitRepository) AuthService {
	return &authService{auth: auth, rateLimiter: rateLimiter}
}

// Login relays credentials to the commerce API. Attempts are rate limited per
// email before any upstream traffic so a brute force can't be proxied through.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.InternalError("Failed to check login rate limit").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			RetryAfter: retryAfter,
			Message:    "Too many login attempts, please try again later",
		}, nil
	}

	session, err := s.auth.Login(ctx, req)
	if err != nil {

		if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeUnauthorized {
			return &models.LoginResponse{
				Success:        false,
				RemainingTries: remaining,
				Message:        appErr.Message,
			}, nil
		}

		return nil, err
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresIn: session.ExpiresIn,
		User:      &session.User,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResponse, error) {

	session, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     session.Token,
		ExpiresIn: session.ExpiresIn,
		User:      &session.User,
	}, nil
}

func (s *authService) Profile(ctx context.Context, token string) (*models.User, error) {

	user, err := s.auth.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	return s.auth.ResetPassword(ctx, req)
}
