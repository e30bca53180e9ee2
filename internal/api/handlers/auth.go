package handlers

import (
	"log/slog"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	"github.com/casafurnish/storefront-gateway/internal/utils"
	"github.com/casafurnish/storefront-gateway/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validator.New()}
}

// Login godoc
//	@Summary		Log in to the dashboard
//	@Description	Relays credentials to the commerce API and returns the bearer token for the session. Attempts are rate limited per email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"Email and password"
//	@Success		200			{object}	models.LoginResponse	"Session token and profile"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	models.LoginResponse	"Wrong credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Router			/auth/login [post]
func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		logger = logger.With(slog.String("email", req.Email))

		resp, err := h.authService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		switch {
		case resp.Success:
			logger.Info("Login successful")
			response.Success(w, http.StatusOK, resp)
		case resp.RetryAfter > 0:
			logger.Warn("Login rate limited", slog.Int("retryAfter", resp.RetryAfter))
			response.Success(w, http.StatusTooManyRequests, resp)
		default:
			logger.Warn("Login rejected", slog.Int("remainingTries", resp.RemainingTries))
			response.Success(w, http.StatusUnauthorized, resp)
		}
	}
}

// Register godoc
//	@Summary		Register a new account
//	@Description	Relays the registration to the commerce API and returns a fresh session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			registration	body		models.RegisterRequest	true	"Name, email and password"
//	@Success		201				{object}	models.LoginResponse	"Session token and profile"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error"
//	@Failure		409				{object}	response.ErrorResponse	"Email already registered"
//	@Router			/auth/register [post]
func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		resp, err := h.authService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("Registration failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Registration successful", slog.String("email", req.Email))
		response.Success(w, http.StatusCreated, resp)
	}
}

// Profile godoc
//	@Summary		Get the current user's profile
//	@Description	Returns the profile of the authenticated user as known by the commerce API.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	models.User				"Current profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/me [get]
func (h *AuthHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		token := middleware.TokenFromContext(r.Context())
		if token == "" {
			logger.Warn("Profile request without token")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		user, err := h.authService.Profile(r.Context(), token)
		if err != nil {
			logger.Error("Failed to fetch profile", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// ResetPassword godoc
//	@Summary		Request a password reset
//	@Description	Asks the commerce API to send a password reset email. Always returns 200 so the endpoint can't be used to probe accounts.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			reset	body		models.ResetPasswordRequest	true	"Account email"
//	@Success		200		{object}	map[string]string			"Reset requested"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Router			/auth/reset-password [post]
func (h *AuthHandler) ResetPassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ResetPasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid reset password input")
			return
		}

		if err := h.authService.ResetPassword(r.Context(), &req); err != nil {
			logger.Warn("Password reset relay failed", slog.Any("error", err))
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "If the account exists, a reset email has been sent"})
	}
}
