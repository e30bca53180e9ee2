package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/clients"
	appErrors "github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	repository "github.com/casafurnish/storefront-gateway/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// 8 to 15 digits with an optional leading +.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

type CheckoutService interface {
	// Submit runs the whole pipeline: preconditions, a single upstream
	// order-creation call, then the post-success effects.
	Submit(ctx context.Context, sessionID, token, locale string, req *models.CheckoutRequest) (*models.Order, error)
}

type checkoutService struct {
	cartRepo    repository.CartRepository
	orders      clients.OrderAPI
	notifier    NotificationService
	validate    *validator.Validate
	sanitizer   *bluemonday.Policy
	shippingFee float64
	clearDelay  time.Duration
}

func NewCheckoutService(cartRepo repository.CartRepository, orders clients.OrderAPI, notifier NotificationService, shippingFee float64, clearDelay time.Duration) CheckoutService {
	return &checkoutService{
		cartRepo:    cartRepo,
		orders:      orders,
		notifier:    notifier,
		validate:    validator.New(),
		sanitizer:   bluemonday.StrictPolicy(),
		shippingFee: shippingFee,
		clearDelay:  clearDelay,
	}
}

func (s *checkoutService) Submit(ctx context.Context, sessionID, token, locale string, req *models.CheckoutRequest) (*models.Order, error) {

	// Every precondition is checked before any upstream traffic. A refused
	// submission makes no network call.
	if token == "" {
		return nil, appErrors.UnauthorizedError("Authentication required")
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, appErrors.InternalError("Failed to load cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, appErrors.BadRequestError("Cannot checkout with an empty cart")
	}

	if err := s.validateCheckout(req); err != nil {
		return nil, err
	}

	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			Image:     item.Image,
		})
	}

	orderReq := &models.CreateOrderRequest{
		Items:         items,
		Customer:      req.Customer,
		PaymentMethod: req.PaymentMethod,
		Shipping:      s.shippingFee,
		Notes:         s.sanitizer.Sanitize(req.Notes),
	}

	order, err := s.orders.Create(ctx, token, idempotencyKey, orderReq)
	if err != nil {
		// No partial side effects: the cart stays as it was so the shopper
		// can correct and resubmit.
		return nil, err
	}

	s.scheduleCartClear(sessionID)
	s.sendReceipt(ctx, order, locale)

	return order, nil
}

// validateCheckout enforces the customer form contract field by field so the
// first offending field is named in the error.
func (s *checkoutService) validateCheckout(req *models.CheckoutRequest) error {

	if err := s.validate.Struct(req); err != nil {

		var validationErrs validator.ValidationErrors

		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			field := validationErrs[0]
			return appErrors.AddValidationError(strings.ToLower(field.Field()), "failed on rule '"+field.Tag()+"'")
		}

		return appErrors.ValidationError("Invalid checkout details")
	}

	if !phonePattern.MatchString(req.Customer.Phone) {
		return appErrors.AddValidationError("phone", "must be 8 to 15 digits with an optional leading '+'")
	}

	return nil
}

// scheduleCartClear empties the cart a few seconds after a successful order.
// The receipt view reads the cart until the shopper moves on, so the clear is
// deliberately detached from the request: it fires even if the caller is gone.
func (s *checkoutService) scheduleCartClear(sessionID string) {
	time.AfterFunc(s.clearDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
			slog.Error("Failed to clear cart after checkout",
				slog.String("sessionId", sessionID),
				slog.String("error", err.Error()))
		}
	})
}

func (s *checkoutService) sendReceipt(ctx context.Context, order *models.Order, locale string) {
	if s.notifier == nil {
		return
	}

	go func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		if err := s.notifier.SendOrderReceipt(ctx, order, locale); err != nil {
			slog.Error("Failed to send order receipt",
				slog.String("orderNumber", order.OrderNumber),
				slog.String("error", err.Error()))
		}
	}(context.WithoutCancel(ctx))
}
