package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// SetCartItem stores a serialized cart line under the user's cart hash
func (c *Client) SetCartItem(ctx context.Context, userID, productID string, payload []byte) error {
	if err := c.rdb.HSet(ctx, cartKey(userID), productID, payload).Err(); err != nil {
		return fmt.Errorf("failed to store cart item: %w", err)
	}
	return nil
}

// GetCartItem retrieves a single serialized cart line; found is false when
// the product is not in the cart
func (c *Client) GetCartItem(ctx context.Context, userID, productID string) ([]byte, bool, error) {
	payload, err := c.rdb.HGet(ctx, cartKey(userID), productID).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cart item: %w", err)
	}
	return payload, true, nil
}

// GetCartItems retrieves all serialized cart lines keyed by product ID
func (c *Client) GetCartItems(ctx context.Context, userID string) (map[string]string, error) {
	items, err := c.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return items, nil
}

// RemoveCartItem deletes a cart line
func (c *Client) RemoveCartItem(ctx context.Context, userID, productID string) error {
	return c.rdb.HDel(ctx, cartKey(userID), productID).Err()
}

// ClearCart deletes the user's entire cart
func (c *Client) ClearCart(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, cartKey(userID)).Err()
}

// CartSize returns the number of lines in the user's cart
func (c *Client) CartSize(ctx context.Context, userID string) (int64, error) {
	return c.rdb.HLen(ctx, cartKey(userID)).Result()
}

// AcquireLock acquires a distributed lock
func (c *Client) AcquireLock(ctx context.Context, lockKey string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, fmt.Sprintf("lock:%s", lockKey), "1", ttl).Result()
}

// ReleaseLock releases a distributed lock
func (c *Client) ReleaseLock(ctx context.Context, lockKey string) error {
	return c.rdb.Del(ctx, fmt.Sprintf("lock:%s", lockKey)).Err()
}
