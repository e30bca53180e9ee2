package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

type ProductAPI interface {
	List(ctx context.Context, q models.ListProductsQuery) ([]models.Product, int, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, token, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, token, id string) error
}

type productClient struct {
	c *Client
}

func NewProductClient(c *Client) ProductAPI {
	return &productClient{c: c}
}

func (p *productClient) List(ctx context.Context, q models.ListProductsQuery) ([]models.Product, int, error) {

	query := url.Values{}

	if q.Category != "" {
		query.Set("category", q.Category)
	}

	if q.Search != "" {
		query.Set("search", q.Search)
	}

	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}

	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	var envelope listEnvelope[productPayload]

	if err := p.c.do(ctx, http.MethodGet, "/products", query, "", nil, &envelope); err != nil {
		return nil, 0, err
	}

	products := make([]models.Product, 0, len(envelope.Data))

	for i := range envelope.Data {
		product, err := envelope.Data[i].toModel()
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	return products, envelope.Total, nil
}

func (p *productClient) Get(ctx context.Context, id string) (*models.Product, error) {

	var payload productPayload

	if err := p.c.do(ctx, http.MethodGet, "/products/"+id, nil, "", nil, &payload); err != nil {
		return nil, err
	}

	product, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) Create(ctx context.Context, token string, req *models.CreateProductRequest) (*models.Product, error) {

	var payload productPayload

	if err := p.c.do(ctx, http.MethodPost, "/products", nil, token, req, &payload); err != nil {
		return nil, err
	}

	product, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) Update(ctx context.Context, token, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	var payload productPayload

	if err := p.c.do(ctx, http.MethodPut, "/products/"+id, nil, token, req, &payload); err != nil {
		return nil, err
	}

	product, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (p *productClient) Delete(ctx context.Context, token, id string) error {
	return p.c.do(ctx, http.MethodDelete, "/products/"+id, nil, token, nil, nil)
}
