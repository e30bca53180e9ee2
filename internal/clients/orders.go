package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

type OrderAPI interface {
	// Create submits exactly one order-creation call. The idempotency key is
	// client-generated so a retried submission cannot double-book.
	Create(ctx context.Context, token, idempotencyKey string, req *models.CreateOrderRequest) (*models.Order, error)
	Get(ctx context.Context, token, id string) (*models.Order, error)
	List(ctx context.Context, token string, page, pageSize int) ([]models.Order, int, error)
	UpdateStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error)
	Stats(ctx context.Context, token string) (*models.OrderStats, error)
}

type orderClient struct {
	c *Client
}

func NewOrderClient(c *Client) OrderAPI {
	return &orderClient{c: c}
}

func (oc *orderClient) Create(ctx context.Context, token, idempotencyKey string, req *models.CreateOrderRequest) (*models.Order, error) {

	headers := http.Header{}

	if idempotencyKey != "" {
		headers.Set("Idempotency-Key", idempotencyKey)
	}

	var payload orderPayload

	if err := oc.c.doWithHeaders(ctx, http.MethodPost, "/orders", nil, token, headers, req, &payload); err != nil {
		return nil, err
	}

	order, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (oc *orderClient) Get(ctx context.Context, token, id string) (*models.Order, error) {

	var payload orderPayload

	if err := oc.c.do(ctx, http.MethodGet, "/orders/"+id, nil, token, nil, &payload); err != nil {
		return nil, err
	}

	order, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (oc *orderClient) List(ctx context.Context, token string, page, pageSize int) ([]models.Order, int, error) {

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var envelope listEnvelope[orderPayload]

	if err := oc.c.do(ctx, http.MethodGet, "/orders", query, token, nil, &envelope); err != nil {
		return nil, 0, err
	}

	orders := make([]models.Order, 0, len(envelope.Data))

	for i := range envelope.Data {
		order, err := envelope.Data[i].toModel()
		if err != nil {
			return nil, 0, err
		}

		orders = append(orders, order)
	}

	return orders, envelope.Total, nil
}

func (oc *orderClient) UpdateStatus(ctx context.Context, token, id string, status models.OrderStatus) (*models.Order, error) {

	req := models.UpdateOrderStatusRequest{Status: status}

	var payload orderPayload

	if err := oc.c.do(ctx, http.MethodPut, "/orders/"+id+"/status", nil, token, req, &payload); err != nil {
		return nil, err
	}

	order, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (oc *orderClient) Stats(ctx context.Context, token string) (*models.OrderStats, error) {

	var stats models.OrderStats

	if err := oc.c.do(ctx, http.MethodGet, "/orders/stats", nil, token, nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
