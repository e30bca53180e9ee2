package handlers

import (
	"log/slog"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/i18n"
	"github.com/casafurnish/storefront-gateway/internal/models"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	"github.com/casafurnish/storefront-gateway/internal/utils"
	"github.com/casafurnish/storefront-gateway/internal/utils/response"
	"github.com/casafurnish/storefront-gateway/pkg/whatsapp"
	"github.com/go-playground/validator/v10"
)

// SessionHeader carries the browser-generated cart session id.
const SessionHeader = "X-Session-ID"

type CartHandler struct {
	cartService    service.CartService
	catalogService service.CatalogService
	bundle         *i18n.Bundle
	validator      *validator.Validate
}

func NewCartHandler(cartService service.CartService, catalogService service.CatalogService, bundle *i18n.Bundle) *CartHandler {
	return &CartHandler{cartService: cartService, catalogService: catalogService, bundle: bundle, validator: validator.New()}
}

func sessionID(r *http.Request) (string, error) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		return "", errors.BadRequestError("Missing " + SessionHeader + " header")
	}

	return id, nil
}

// GetCart godoc
//	@Summary		Get the session cart
//	@Description	Returns the cart for the session identified by the X-Session-ID header. A session with no cart yet gets an empty one.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Cart session identifier"
//	@Success		200				{object}	models.Cart				"Current cart"
//	@Failure		400				{object}	response.ErrorResponse	"Missing session header"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//	@Summary		Add a product to the cart
//	@Description	Adds one unit of the product to the session cart. Adding a product already in the cart increments its quantity by one.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Cart session identifier"
//	@Param			item			body		models.AddItemRequest	true	"Product snapshot to add"
//	@Success		200				{object}	models.Cart				"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Validation error or missing session header"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to add cart item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("productId", req.ProductID), slog.Int("totalItems", cart.TotalItems()))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//	@Summary		Set the quantity of a cart line
//	@Description	Sets the quantity of the given product exactly. A quantity of zero removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string							true	"Cart session identifier"
//	@Param			update			body		models.UpdateQuantityRequest	true	"Product id and new quantity"
//	@Success		200				{object}	models.Cart						"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse			"Validation error or product not in cart"
//	@Failure		500				{object}	response.ErrorResponse			"Internal server error"
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update cart quantity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// RemoveItem godoc
//	@Summary		Remove a product from the cart
//	@Description	Removes the product's line from the session cart. Removing a product that isn't in the cart is a no-op.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Cart session identifier"
//	@Param			productId		path		string					true	"Product ID"
//	@Success		200				{object}	models.Cart				"Updated cart"
//	@Failure		400				{object}	response.ErrorResponse	"Missing session header"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)
			return
		}

		productID := r.PathValue("productId")

		cart, err := h.cartService.RemoveItem(r.Context(), id, productID)
		if err != nil {
			logger.Error("Failed to remove cart item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//	@Summary		Empty the cart
//	@Description	Removes every line from the session cart.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Cart session identifier"
//	@Success		200				{object}	map[string]string		"Cart cleared"
//	@Failure		400				{object}	response.ErrorResponse	"Missing session header"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)
			return
		}

		if err := h.cartService.ClearCart(r.Context(), id); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
	}
}

// WhatsAppLink godoc
//	@Summary		Build a WhatsApp order link for the cart
//	@Description	Renders the cart as a localized WhatsApp message and returns a wa.me deep link using the store's configured number.
//	@Tags			Cart
//	@Produce		json
//	@Param			X-Session-ID	header		string					true	"Cart session identifier"
//	@Success		200				{object}	map[string]string		"Deep link"
//	@Failure		400				{object}	response.ErrorResponse	"Missing session header or empty cart"
//	@Failure		500				{object}	response.ErrorResponse	"Internal server error"
//	@Router			/cart/whatsapp-link [get]
func (h *CartHandler) WhatsAppLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := sessionID(r)
		if err != nil {
			logger.Warn("Cart request without session header")
			response.Error(w, err)
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if len(cart.Items) == 0 {
			response.Error(w, errors.BadRequestError("Cannot share an empty cart"))
			return
		}

		settings, err := h.catalogService.GetSettings(r.Context())
		if err != nil {
			logger.Error("Failed to load store settings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		locale := middleware.LocaleFromContext(r.Context())
		link := whatsapp.CartLink(settings.WhatsAppNumber, cart, settings.Currency,
			h.bundle.T(locale, "whatsapp.cart_intro"), h.bundle.T(locale, "whatsapp.total"))

		response.Success(w, http.StatusOK, map[string]string{"url": link})
	}
}
