package clients_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/clients"
	"github.com/casafurnish/storefront-gateway/internal/config"
	appErrors "github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *clients.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := clients.New(&config.Upstream{BaseURL: server.URL + "/api", Timeout: 2 * time.Second})
	require.NoError(t, err)

	return c
}

func TestProductClient_IDNormalization(t *testing.T) {
	ctx := context.Background()

	t.Run("Mongo-style _id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/products/p1", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{"_id": "p1", "name": "Oak Chair", "price": 100})
		})

		product, err := clients.NewProductClient(c).Get(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, "p1", product.ID)
		assert.Equal(t, "Oak Chair", product.Name)
	})

	t.Run("Plain id", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "p2", "name": "Pine Table"})
		})

		product, err := clients.NewProductClient(c).Get(ctx, "p2")

		require.NoError(t, err)
		assert.Equal(t, "p2", product.ID)
	})

	t.Run("Plain id wins when both are present", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"_id": "legacy", "id": "p3", "name": "Stool"})
		})

		product, err := clients.NewProductClient(c).Get(ctx, "p3")

		require.NoError(t, err)
		assert.Equal(t, "p3", product.ID)
	})

	t.Run("Missing id is rejected as malformed", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"name": "Nameless"})
		})

		_, err := clients.NewProductClient(c).Get(ctx, "p4")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
	})
}

func TestProductClient_List(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chairs", r.URL.Query().Get("category"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"_id": "p1", "name": "Oak Chair"}, {"id": "p2", "name": "Stool"}},
			"total": 14,
		})
	})

	products, total, err := clients.NewProductClient(c).List(ctx, models.ListProductsQuery{Category: "chairs", Page: 2, PageSize: 12})

	require.NoError(t, err)
	assert.Equal(t, 14, total)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
}

func TestOrderClient_Create(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.Equal(t, "key-123", r.Header.Get("Idempotency-Key"))

		var req models.CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Items, 1)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"_id": "o1", "order_number": "CF-1042", "status": "pending", "total": 200})
	})

	order, err := clients.NewOrderClient(c).Create(ctx, "jwt-token", "key-123", &models.CreateOrderRequest{
		Items: []models.OrderItem{{ProductID: "p1", Name: "Oak Chair", Quantity: 2, UnitPrice: 100}},
	})

	require.NoError(t, err)
	assert.Equal(t, "CF-1042", order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrderClient_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/orders/o1/status", r.URL.Path)

		var req models.UpdateOrderStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.OrderStatusConfirmed, req.Status)

		_ = json.NewEncoder(w).Encode(map[string]any{"_id": "o1", "status": "confirmed"})
	})

	order, err := clients.NewOrderClient(c).UpdateStatus(ctx, "jwt-token", "o1", models.OrderStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
}

func TestClient_ErrorDecoding(t *testing.T) {
	ctx := context.Background()

	t.Run("message field", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product not found"})
		})

		_, err := clients.NewProductClient(c).Get(ctx, "ghost")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.Equal(t, "Product not found", appErr.Message)
	})

	t.Run("error field", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid payload"})
		})

		_, err := clients.NewProductClient(c).Get(ctx, "p1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "invalid payload", appErr.Message)
	})

	t.Run("undecodable body gets a synthesized message", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>boom</html>"))
		})

		_, err := clients.NewProductClient(c).Get(ctx, "p1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstream, appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
		assert.Equal(t, "Server error: 500 Internal Server Error", appErr.Message)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		c, err := clients.New(&config.Upstream{BaseURL: server.URL + "/api", Timeout: time.Second})
		require.NoError(t, err)

		_, err = clients.NewProductClient(c).Get(ctx, "p1")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUpstreamUnavailable, appErr.Code)
		assert.Equal(t, "Cannot connect to backend server", appErr.Message)
	})
}

func TestAuthClient_Login(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@casafurnish.com", req.Email)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":      "jwt-token",
			"expires_in": 3600,
			"user":       map[string]any{"_id": "u1", "email": req.Email, "role": "admin"},
		})
	})

	session, err := clients.NewAuthClient(c).Login(ctx, &models.LoginRequest{Email: "admin@casafurnish.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, models.RoleAdmin, session.User.Role)
}
