package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyStore is a Store backed by valkey-go.
type ValkeyStore struct {
	client valkey.Client
}

func NewValkeyStore(addr, username, password string, tlsConfig *tls.Config) (*ValkeyStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
		Username:    username,
		Password:    password,
		TLSConfig:   tlsConfig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create valkey client: %w", err)
	}
	return &ValkeyStore{client: client}, nil
}

func (c *ValkeyStore) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}

func (c *ValkeyStore) Close() error {
	c.client.Close()
	return nil
}

// Get retrieves a value from Valkey by key
func (c *ValkeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, true, nil
}

// SetWithExpiry stores a value with the given key, expiring after whole seconds.
func (c *ValkeyStore) SetWithExpiry(ctx context.Context, key string, value string, expiry time.Duration) error {
	cmd := c.client.B().Set().Key(key).Value(value).Build()
	if secs := int64(expiry / time.Second); secs > 0 {
		cmd = c.client.B().Setex().Key(key).Seconds(secs).Value(value).Build()
	}
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to set key %s with expiry: %w", key, err)
	}
	return nil
}
