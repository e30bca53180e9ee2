package clients

import (
	"context"
	"net/http"
	"net/url"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

type ReviewAPI interface {
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, token, id string) error
}

type reviewClient struct {
	c *Client
}

func NewReviewClient(c *Client) ReviewAPI {
	return &reviewClient{c: c}
}

func (rc *reviewClient) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {

	query := url.Values{}
	query.Set("product_id", productID)

	var payloads []reviewPayload

	if err := rc.c.do(ctx, http.MethodGet, "/reviews", query, "", nil, &payloads); err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(payloads))

	for i := range payloads {
		review, err := payloads[i].toModel()
		if err != nil {
			return nil, err
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (rc *reviewClient) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {

	var payload reviewPayload

	if err := rc.c.do(ctx, http.MethodPost, "/reviews", nil, "", req, &payload); err != nil {
		return nil, err
	}

	review, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (rc *reviewClient) Delete(ctx context.Context, token, id string) error {
	return rc.c.do(ctx, http.MethodDelete, "/reviews/"+id, nil, token, nil, nil)
}
