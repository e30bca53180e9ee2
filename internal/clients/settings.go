package clients

import (
	"context"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

type SettingsAPI interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, token string, req *models.UpdateSettingsRequest) (*models.Settings, error)
}

type settingsClient struct {
	c *Client
}

func NewSettingsClient(c *Client) SettingsAPI {
	return &settingsClient{c: c}
}

func (sc *settingsClient) Get(ctx context.Context) (*models.Settings, error) {

	var settings models.Settings

	if err := sc.c.do(ctx, http.MethodGet, "/settings", nil, "", nil, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (sc *settingsClient) Update(ctx context.Context, token string, req *models.UpdateSettingsRequest) (*models.Settings, error) {

	var settings models.Settings

	if err := sc.c.do(ctx, http.MethodPut, "/settings", nil, token, req, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
