package clients

import (
	"context"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

type CategoryAPI interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, token string, req *models.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, token, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, token, id string) error
}

type categoryClient struct {
	c *Client
}

func NewCategoryClient(c *Client) CategoryAPI {
	return &categoryClient{c: c}
}

func (cc *categoryClient) List(ctx context.Context) ([]models.Category, error) {

	var payloads []categoryPayload

	if err := cc.c.do(ctx, http.MethodGet, "/categories", nil, "", nil, &payloads); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(payloads))

	for i := range payloads {
		category, err := payloads[i].toModel()
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, nil
}

func (cc *categoryClient) Create(ctx context.Context, token string, req *models.CreateCategoryRequest) (*models.Category, error) {

	var payload categoryPayload

	if err := cc.c.do(ctx, http.MethodPost, "/categories", nil, token, req, &payload); err != nil {
		return nil, err
	}

	category, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (cc *categoryClient) Update(ctx context.Context, token, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {

	var payload categoryPayload

	if err := cc.c.do(ctx, http.MethodPut, "/categories/"+id, nil, token, req, &payload); err != nil {
		return nil, err
	}

	category, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &category, nil
}

func (cc *categoryClient) Delete(ctx context.Context, token, id string) error {
	return cc.c.do(ctx, http.MethodDelete, "/categories/"+id, nil, token, nil, nil)
}
