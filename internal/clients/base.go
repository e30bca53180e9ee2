package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	pathpkg "path"

	"strings"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/casafurnish/storefront-gateway/internal/config"
	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the single door to the commerce API. Every resource client wraps
// it, so auth headers, correlation ids, timeouts and error decoding live in
// exactly one place.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

func New(cfg *config.Upstream) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url %q: %w", cfg.BaseURL, err)
	}

	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Client{baseURL: u, http: httpClient}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	return c.doWithHeaders(ctx, method, path, query, token, nil, body, out)
}

func (c *Client) doWithHeaders(ctx context.Context, method, path string, query url.Values, token string, headers http.Header, body, out any) error {

	u := *c.baseURL
	u.Path = pathpkg.Join(u.Path, path)

	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.InternalError("Failed to encode request payload").WithError(err)
		}

		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return errors.InternalError("Failed to build upstream request").WithError(err)
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if cid := middleware.CorrelationIDFromContext(ctx); cid != "" {
		req.Header.Set("X-Request-ID", cid)
	}

	resource, _, _ := strings.Cut(strings.TrimLeft(path, "/"), "/")
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(resource, 0, time.Since(start))
		return errors.UpstreamUnavailableError("Cannot connect to backend server").WithError(err)
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(resource, resp.StatusCode, time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.UpstreamError("Failed to read upstream response", http.StatusBadGateway).WithError(err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeUpstreamError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.UpstreamError("Malformed response from backend", http.StatusBadGateway).WithError(err)
	}

	return nil
}

// upstreamErrorBody matches the two spellings the commerce API uses for its
// error payloads.
type upstreamErrorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
}

func decodeUpstreamError(statusCode int, body []byte) error {

	var parsed upstreamErrorBody

	message := ""
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			message = parsed.Message
		} else if parsed.Err != "" {
			message = parsed.Err
		}
	}

	if message == "" {
		message = fmt.Sprintf("Server error: %d %s", statusCode, http.StatusText(statusCode))
	}

	switch statusCode {
	case http.StatusBadRequest:
		return errors.BadRequestError(message)
	case http.StatusUnauthorized:
		return errors.UnauthorizedError(message)
	case http.StatusForbidden:
		return errors.ForbiddenError(message)
	case http.StatusNotFound:
		return errors.NotFoundError(message)
	case http.StatusConflict:
		return errors.DuplicateEntryError(message)
	case http.StatusTooManyRequests:
		return errors.TooManyRequestsError(message)
	default:
		return errors.UpstreamError(message, http.StatusBadGateway)
	}
}
