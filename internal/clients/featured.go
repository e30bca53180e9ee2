package clients

import (
	"context"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

type FeaturedSectionAPI interface {
	List(ctx context.Context) ([]models.FeaturedSection, error)
	Create(ctx context.Context, token string, req *models.CreateFeaturedSectionRequest) (*models.FeaturedSection, error)
	Update(ctx context.Context, token, id string, req *models.UpdateFeaturedSectionRequest) (*models.FeaturedSection, error)
	Delete(ctx context.Context, token, id string) error
}

type featuredClient struct {
	c *Client
}

func NewFeaturedSectionClient(c *Client) FeaturedSectionAPI {
	return &featuredClient{c: c}
}

func (fc *featuredClient) List(ctx context.Context) ([]models.FeaturedSection, error) {

	var payloads []featuredSectionPayload

	if err := fc.c.do(ctx, http.MethodGet, "/featured-sections", nil, "", nil, &payloads); err != nil {
		return nil, err
	}

	sections := make([]models.FeaturedSection, 0, len(payloads))

	for i := range payloads {
		section, err := payloads[i].toModel()
		if err != nil {
			return nil, err
		}

		sections = append(sections, section)
	}

	return sections, nil
}

func (fc *featuredClient) Create(ctx context.Context, token string, req *models.CreateFeaturedSectionRequest) (*models.FeaturedSection, error) {

	var payload featuredSectionPayload

	if err := fc.c.do(ctx, http.MethodPost, "/featured-sections", nil, token, req, &payload); err != nil {
		return nil, err
	}

	section, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &section, nil
}

func (fc *featuredClient) Update(ctx context.Context, token, id string, req *models.UpdateFeaturedSectionRequest) (*models.FeaturedSection, error) {

	var payload featuredSectionPayload

	if err := fc.c.do(ctx, http.MethodPut, "/featured-sections/"+id, nil, token, req, &payload); err != nil {
		return nil, err
	}

	section, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &section, nil
}

func (fc *featuredClient) Delete(ctx context.Context, token, id string) error {
	return fc.c.do(ctx, http.MethodDelete, "/featured-sections/"+id, nil, token, nil, nil)
}
