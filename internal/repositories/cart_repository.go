package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/casafurnish/storefront-gateway/internal/models"
	"github.com/redis/go-redis/v9"
)

// CartRepository persists session carts. This is the server-side stand-in for
// the browser's local storage: carts survive restarts but are never the
// system of record for anything the commerce API owns.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepo(client *redis.Client, ttl time.Duration) CartRepository {
	return &redisCartRepository{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get rehydrates the cart for a session, or returns a fresh empty cart when
// none is stored yet.
func (r *redisCartRepository) Get(ctx context.Context, sessionID string) (*models.Cart, error) {

	data, err := r.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {

		if err == redis.Nil {
			now := time.Now()
			return &models.Cart{SessionID: sessionID, Items: []models.CartItem{}, CreatedAt: now, UpdatedAt: now}, nil
		}

		return nil, fmt.Errorf("failed to get cart %s from redis: %w", sessionID, err)
	}

	var cart models.Cart

	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart %s: %w", sessionID, err)
	}

	return &cart, nil
}

func (r *redisCartRepository) Save(ctx context.Context, cart *models.Cart) error {

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cart.SessionID, err)
	}

	if err := r.client.Set(ctx, cartKey(cart.SessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s in redis: %w", cart.SessionID, err)
	}

	return nil
}

func (r *redisCartRepository) Delete(ctx context.Context, sessionID string) error {

	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s from redis: %w", sessionID, err)
	}

	return nil
}
