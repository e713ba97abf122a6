package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dumu-tech/pixel-bazaar/internal/core"
	"github.com/redis/go-redis/v9"
)

const (
	// CartKeyPrefix is the prefix for cart session keys in Redis
	CartKeyPrefix = "cart:"
	// DefaultCartTTL is how long an untouched cart survives (2 hours)
	DefaultCartTTL = 2 * time.Hour
)

// CartRepository implements core.CartRepository on Redis. The whole cart is
// stored as one JSON blob under the session key, refreshed on every write.
type CartRepository struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewCartRepository creates a Redis-backed cart for one session
func NewCartRepository(client *redis.Client, sessionID string) *CartRepository {
	return &CartRepository{client: client, sessionID: sessionID, ttl: DefaultCartTTL}
}

func (r *CartRepository) key() string {
	return CartKeyPrefix + r.sessionID
}

// Get retrieves the cart; a missing key is an empty cart, not an error
func (r *CartRepository) Get(ctx context.Context) ([]core.CartItem, error) {
	val, err := r.client.Get(ctx, r.key()).Result()
	if err == redis.Nil {
		return []core.CartItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var cart []core.CartItem
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return cart, nil
}

// Save stores the full cart with a refreshed TTL
func (r *CartRepository) Save(ctx context.Context, cart []core.CartItem) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, r.key(), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Clear removes the cart key
func (r *CartRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
