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

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout godoc
//	@Summary		Place an order from the session cart
//	@Description	Validates the customer form, sends the cart to the commerce API as a new order and returns the receipt. The cart is cleared shortly after a successful order; on failure it is left untouched.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Cart session identifier"
//	@Param			checkout		body		models.CheckoutRequest	true	"Customer details, payment method and optional notes"
//	@Success		201				{object}	models.Order			"Created order (receipt)"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error or empty cart"
//	@Failure		401				{object}	response.ErrorResponse	"Authentication required"
//	@Failure		502				{object}	response.ErrorResponse	"Commerce API unavailable"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Checkout without session header")
			response.Error(w, err)
			return
		}

		token := middleware.TokenFromContext(r.Context())
		if token == "" {
			logger.Warn("Unauthenticated checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		locale := middleware.LocaleFromContext(r.Context())

		order, err := h.checkoutService.Submit(r.Context(), id, token, locale, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed",
			slog.String("orderId", order.ID),
			slog.String("orderNumber", order.OrderNumber))
		response.Success(w, http.StatusCreated, order)
	}
}
