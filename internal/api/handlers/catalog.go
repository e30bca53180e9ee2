package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/casafurnish/storefront-gateway/internal/i18n"
	"github.com/casafurnish/storefront-gateway/internal/models"
	service "github.com/casafurnish/storefront-gateway/internal/services"
	"github.com/casafurnish/storefront-gateway/internal/utils"
	"github.com/casafurnish/storefront-gateway/internal/utils/response"
	"github.com/casafurnish/storefront-gateway/pkg/whatsapp"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	bundle         *i18n.Bundle
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService service.CatalogService, bundle *i18n.Bundle) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, bundle: bundle, validator: validator.New()}
}

// ListProducts godoc
//	@Summary		List products
//	@Description	Returns a paginated product list, optionally filtered by category slug or a free-text search.
//	@Tags			Catalog
//	@Produce		json
//	@Param			category	query		string											false	"Category slug"
//	@Param			search		query		string											false	"Free-text search"
//	@Param			page		query		int												false	"Page number (default: 1)"			minimum(1)
//	@Param			pageSize	query		int												false	"Items per page (default: 12)"		minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Products"
//	@Failure		502			{object}	response.ErrorResponse							"Commerce API unavailable"
//	@Router			/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		q := models.ListProductsQuery{
			Category: r.URL.Query().Get("category"),
			Search:   r.URL.Query().Get("search"),
		}

		q.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
		if q.Page < 1 {
			q.Page = 1
		}

		q.PageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
		if q.PageSize < 1 || q.PageSize > 100 {
			q.PageSize = 12
		}

		products, total, err := h.catalogService.ListProducts(r.Context(), q)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     q.Page,
			PageSize: q.PageSize,
		})
	}
}

// GetProduct godoc
//	@Summary		Get a product
//	@Description	Returns a single product by id.
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		product, err := h.catalogService.GetProduct(r.Context(), r.PathValue("id"))
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", r.PathValue("id")), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListCategories godoc
//	@Summary		List categories
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.Category			"Categories"
//	@Failure		502	{object}	response.ErrorResponse	"Commerce API unavailable"
//	@Router			/categories [get]
func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			logger.Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

// ListFeaturedSections godoc
//	@Summary		List featured home-page sections
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{array}		models.FeaturedSection	"Featured sections"
//	@Failure		502	{object}	response.ErrorResponse	"Commerce API unavailable"
//	@Router			/featured-sections [get]
func (h *CatalogHandler) ListFeaturedSections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sections, err := h.catalogService.ListFeaturedSections(r.Context())
		if err != nil {
			logger.Error("Failed to list featured sections", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, sections)
	}
}

// ListReviews godoc
//	@Summary		List reviews for a product
//	@Tags			Catalog
//	@Produce		json
//	@Param			id	path		string					true	"Product ID"
//	@Success		200	{array}		models.Review			"Reviews"
//	@Failure		502	{object}	response.ErrorResponse	"Commerce API unavailable"
//	@Router			/products/{id}/reviews [get]
func (h *CatalogHandler) ListReviews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		reviews, err := h.catalogService.ListReviews(r.Context(), r.PathValue("id"))
		if err != nil {
			logger.Error("Failed to list reviews", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, reviews)
	}
}

// CreateReview godoc
//	@Summary		Submit a product review
//	@Description	Creates a review for a product. Author and comment are sanitized before relay.
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			review	body		models.CreateReviewRequest	true	"Review"
//	@Success		201		{object}	models.Review				"Created review"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Router			/reviews [post]
func (h *CatalogHandler) CreateReview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateReviewRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid review input")
			return
		}

		review, err := h.catalogService.CreateReview(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create review", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Review created", slog.String("productId", req.ProductID))
		response.Success(w, http.StatusCreated, review)
	}
}

// GetSettings godoc
//	@Summary		Get public store settings
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	models.Settings			"Store settings"
//	@Failure		502	{object}	response.ErrorResponse	"Commerce API unavailable"
//	@Router			/settings [get]
func (h *CatalogHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		settings, err := h.catalogService.GetSettings(r.Context())
		if err != nil {
			logger.Error("Failed to get settings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}

// Messages godoc
//	@Summary		Get the UI message bundle for the request locale
//	@Tags			Locale
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Localized messages"
//	@Router			/messages [get]
func (h *CatalogHandler) Messages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := middleware.LocaleFromContext(r.Context())
		response.Success(w, http.StatusOK, h.bundle.Messages(locale))
	}
}

// InquiryLink godoc
//	@Summary		Build a WhatsApp inquiry link
//	@Description	Returns a wa.me deep link carrying the localized store inquiry template.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	map[string]string		"Deep link"
//	@Failure		502	{object}	response.ErrorResponse	"Commerce API unavailable"
//	@Router			/whatsapp-link [get]
func (h *CatalogHandler) InquiryLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		settings, err := h.catalogService.GetSettings(r.Context())
		if err != nil {
			logger.Error("Failed to load store settings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		locale := middleware.LocaleFromContext(r.Context())
		link := whatsapp.Link(settings.WhatsAppNumber, h.bundle.T(locale, "whatsapp.inquiry"))

		response.Success(w, http.StatusOK, map[string]string{"url": link})
	}
}
