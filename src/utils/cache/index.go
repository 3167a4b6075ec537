package cache

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yashkumarverma/cronphrase/src/utils"
)

// Store is the minimal key/value surface the translator needs.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// SetWithExpiry stores value under key; an expiry of 0 keeps it forever.
	SetWithExpiry(ctx context.Context, key string, value string, expiry time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// NewClient connects to the cache named by config.CacheURLScheme.
func NewClient(ctx context.Context, config *utils.Config) (Store, error) {
	var tlsConfig *tls.Config
	if config.CacheTLSDomain != "" {
		tlsConfig = &tls.Config{ServerName: config.CacheTLSDomain}
	}

	var (
		store Store
		err   error
	)
	switch config.CacheURLScheme {
	case "redis", "rediss":
		store = NewRedisStore(config.CacheAddr(), config.CacheUsername, config.CachePassword, tlsConfig)
	case "valkey", "valkeys":
		store, err = NewValkeyStore(config.CacheAddr(), config.CacheUsername, config.CachePassword, tlsConfig)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported cache scheme: %s", config.CacheURLScheme)
	}

	// Test the connection
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", config.CacheURLScheme, err)
	}
	return store, nil
}

// GetJSON retrieves a JSON value by key and unmarshals it into dest.
// It reports false when the key doesn't exist.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	val, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value for key %s: %w", key, err)
	}
	return true, nil
}

// SetJSONWithExpiry stores a JSON value with the given key and expiration time.
func SetJSONWithExpiry(ctx context.Context, s Store, key string, value any, expiry time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}
	return s.SetWithExpiry(ctx, key, string(jsonData), expiry)
}
