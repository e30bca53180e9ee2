package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/i18n"
	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/casafurnish/storefront-gateway/pkg/currency"
	"github.com/casafurnish/storefront-gateway/pkg/sendgrid"
)

type NotificationService interface {
	SendOrderReceipt(ctx context.Context, order *models.Order, locale string) error
}

type notificationService struct {
	email        sendgrid.EmailService
	bundle       *i18n.Bundle
	currencyCode string
}

func NewNotificationService(email sendgrid.EmailService, bundle *i18n.Bundle, currencyCode string) NotificationService {
	return &notificationService{email: email, bundle: bundle, currencyCode: currencyCode}
}

// SendOrderReceipt emails the shopper a plain-text receipt in their locale.
// Best effort: checkout never fails because of it.
func (s *notificationService) SendOrderReceipt(ctx context.Context, order *models.Order, locale string) error {

	if s.email == nil {
		return nil
	}

	subject := strings.ReplaceAll(s.bundle.T(locale, "order.receipt_subject"), "{orderNumber}", order.OrderNumber)
	greeting := strings.ReplaceAll(s.bundle.T(locale, "order.receipt_greeting"), "{name}", order.Customer.Name)

	var body strings.Builder

	body.WriteString(greeting)
	body.WriteString("\n\n")

	for _, item := range order.Items {
		body.WriteString(fmt.Sprintf("%s x%d: %s\n", item.Name, item.Quantity, currency.Format(item.UnitPrice*float64(item.Quantity), s.currencyCode)))
	}

	body.WriteString("\n")
	body.WriteString(s.bundle.T(locale, "order.receipt_total"))
	body.WriteString(": ")
	body.WriteString(currency.Format(order.Total, s.currencyCode))
	body.WriteString("\n")

	req := &sendgrid.EmailRequest{
		To:      order.Customer.Email,
		Subject: subject,
		Content: body.String(),
	}

	if err := s.email.Send(ctx, req); err != nil {
		return errors.ThirdPartyError("Failed to send receipt email").WithError(err)
	}

	return nil
}
