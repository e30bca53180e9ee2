package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/casafurnish/storefront-gateway/internal/models"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	"github.com/casafurnish/storefront-gateway/internal/utils"
	"github.com/casafurnish/storefront-gateway/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// AdminHandler exposes the dashboard's write surface. Every route is mounted
// behind RequireAdmin, so the bearer token in context is already verified.
type AdminHandler struct {
	adminService service.AdminService
	validator    *validator.Validate
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService, validator: validator.New()}
}

// CreateProduct godoc
//	@Summary		Create a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product"
//	@Success		201		{object}	models.Product				"Created product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Admin role required"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *AdminHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.adminService.CreateProduct(r.Context(), middleware.TokenFromContext(r.Context()), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// UpdateProduct godoc
//	@Summary		Update a product
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		product, err := h.adminService.UpdateProduct(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id"), &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.String("productId", product.ID))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//	@Summary		Delete a product
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	map[string]string		"Deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.adminService.DeleteProduct(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id")); err != nil {
			logger.Error("Failed to delete product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", r.PathValue("id")))
		response.Success(w, http.StatusOK, map[string]string{"message": "Product deleted"})
	}
}

// CreateCategory godoc
//	@Summary	Create a category
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/categories [post]
func (h *AdminHandler) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create category input")
			return
		}

		category, err := h.adminService.CreateCategory(r.Context(), middleware.TokenFromContext(r.Context()), &req)
		if err != nil {
			logger.Error("Failed to create category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Category created", slog.String("categoryId", category.ID))
		response.Success(w, http.StatusCreated, category)
	}
}

// UpdateCategory godoc
//	@Summary	Update a category
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateCategoryRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update category input")
			return
		}

		category, err := h.adminService.UpdateCategory(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id"), &req)
		if err != nil {
			logger.Error("Failed to update category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}

// DeleteCategory godoc
//	@Summary	Delete a category
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.adminService.DeleteCategory(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id")); err != nil {
			logger.Error("Failed to delete category", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Category deleted"})
	}
}

// CreateFeaturedSection godoc
//	@Summary	Create a featured section
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/featured-sections [post]
func (h *AdminHandler) CreateFeaturedSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateFeaturedSectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create featured section input")
			return
		}

		section, err := h.adminService.CreateFeaturedSection(r.Context(), middleware.TokenFromContext(r.Context()), &req)
		if err != nil {
			logger.Error("Failed to create featured section", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, section)
	}
}

// UpdateFeaturedSection godoc
//	@Summary	Update a featured section
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/featured-sections/{id} [put]
func (h *AdminHandler) UpdateFeaturedSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateFeaturedSectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update featured section input")
			return
		}

		section, err := h.adminService.UpdateFeaturedSection(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id"), &req)
		if err != nil {
			logger.Error("Failed to update featured section", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, section)
	}
}

// DeleteFeaturedSection godoc
//	@Summary	Delete a featured section
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/featured-sections/{id} [delete]
func (h *AdminHandler) DeleteFeaturedSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.adminService.DeleteFeaturedSection(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id")); err != nil {
			logger.Error("Failed to delete featured section", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Featured section deleted"})
	}
}

// ListOrders godoc
//	@Summary		List orders with pagination
//	@Tags			Admin
//	@Produce		json
//	@Param			page		query		int												false	"Page number (default: 1)"			minimum(1)
//	@Param			pageSize	query		int												false	"Items per page (default: 10)"		minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}	"Orders"
//	@Security		BearerAuth
//	@Router			/admin/orders [get]
func (h *AdminHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}
		pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
		if err != nil || pageSize < 1 || pageSize > 100 {
			pageSize = 10
		}

		orders, total, err := h.adminService.ListOrders(r.Context(), middleware.TokenFromContext(r.Context()), page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		resp := models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		}

		logger.Debug("Orders listed", slog.Int("total", total), slog.Int("totalPages", resp.TotalPages()))
		response.Success(w, http.StatusOK, resp)
	}
}

// GetOrder godoc
//	@Summary	Get an order
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		order, err := h.adminService.GetOrder(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id"))
		if err != nil {
			logger.Error("Failed to get order", slog.String("orderId", r.PathValue("id")), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// UpdateOrderStatus godoc
//	@Summary		Update an order's status
//	@Description	Moves the order along the pending → confirmed → processing → shipped → delivered lifecycle. Cancellation is allowed from any non-terminal state; backward moves are rejected.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.Order					"Updated order"
//	@Failure		400		{object}	response.ErrorResponse			"Invalid transition"
//	@Failure		404		{object}	response.ErrorResponse			"Order not found"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order status input")
			return
		}

		logger = logger.With(slog.String("orderId", r.PathValue("id")), slog.String("newStatus", string(req.Status)))

		order, err := h.adminService.UpdateOrderStatus(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id"), req.Status)
		if err != nil {
			logger.Error("Failed to update order status", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order status updated")
		response.Success(w, http.StatusOK, order)
	}
}

// OrderStats godoc
//	@Summary	Get order statistics for the dashboard
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/orders/stats [get]
func (h *AdminHandler) OrderStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		stats, err := h.adminService.OrderStats(r.Context(), middleware.TokenFromContext(r.Context()))
		if err != nil {
			logger.Error("Failed to get order stats", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, stats)
	}
}

// DeleteReview godoc
//	@Summary	Delete a review
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/reviews/{id} [delete]
func (h *AdminHandler) DeleteReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.adminService.DeleteReview(r.Context(), middleware.TokenFromContext(r.Context()), r.PathValue("id")); err != nil {
			logger.Error("Failed to delete review", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Review deleted"})
	}
}

// UpdateSettings godoc
//	@Summary	Update store settings
//	@Tags		Admin
//	@Security	BearerAuth
//	@Router		/admin/settings [put]
func (h *AdminHandler) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateSettingsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update settings input")
			return
		}

		settings, err := h.adminService.UpdateSettings(r.Context(), middleware.TokenFromContext(r.Context()), &req)
		if err != nil {
			logger.Error("Failed to update settings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Store settings updated")
		response.Success(w, http.StatusOK, settings)
	}
}
