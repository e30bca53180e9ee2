package health

import (
	"fmt"
	"net/url"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthHTTP "github.com/hellofresh/health-go/v5/checks/http"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// NewHealthHandler reports the two dependencies the gateway cannot serve
// without: the Redis session store and the upstream commerce API.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {

	upstreamURL, err := url.JoinPath(cfg.Upstream.BaseURL, "health")
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base URL: %w", err)
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-gateway",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name:      "commerce-api",
				Timeout:   5 * time.Second,
				SkipOnErr: true,
				Check: healthHTTP.New(healthHTTP.Config{
					URL: upstreamURL,
				}),
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
