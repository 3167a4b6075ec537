package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by go-redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, username, password string, tlsConfig *tls.Config) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  password,
		Username:  username,
		DB:        0,
		TLSConfig: tlsConfig,
	})
	return &RedisStore{client: rdb}
}

func (c *RedisStore) GetClient() *redis.Client {
	return c.client
}

func (c *RedisStore) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisStore) Close() error {
	return c.client.Close()
}

// Get retrieves a value from Redis by key
func (c *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, true, nil
}

// SetWithExpiry stores a value in Redis with the given key and expiration time
func (c *RedisStore) SetWithExpiry(ctx context.Context, key string, value string, expiry time.Duration) error {
	if err := c.client.Set(ctx, key, value, expiry).Err(); err != nil {
		return fmt.Errorf("failed to set key %s with expiry: %w", key, err)
	}
	return nil
}
