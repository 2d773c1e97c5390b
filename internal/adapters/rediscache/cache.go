// Package rediscache implements core.CacheRepository on Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/target/crawl-admin/internal/core"
)

var _ core.CacheRepository = (*Repo)(nil)

// Repo stores cache entries in Redis under a key prefix.
type Repo struct {
	client redis.UniversalClient
	prefix string
}

// New creates a Repo. An empty prefix stores keys as given.
func New(client redis.UniversalClient, prefix string) *Repo {
	return &Repo{client: client, prefix: prefix}
}

func (r *Repo) key(k string) (string, error) {
	if strings.TrimSpace(k) == "" {
		return "", errors.New("key cannot be empty")
	}
	return r.prefix + k, nil
}

// Set stores a value with the given TTL; a zero TTL never expires.
func (r *Repo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := r.key(key)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, k, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get returns the stored value, or nil when the key is missing.
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := r.key(key)
	if err != nil {
		return nil, err
	}
	b, err := r.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return b, nil
}

// Delete removes a key and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, key string) (bool, error) {
	k, err := r.key(key)
	if err != nil {
		return false, err
	}
	n, err := r.client.Del(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return n > 0, nil
}

// Health pings Redis.
func (r *Repo) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Config holds the connection settings for the console's own Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a Redis client for the given configuration.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
