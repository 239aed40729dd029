package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultClientName identifies goexpense connections in CLIENT LIST.
const DefaultClientName = "goexpense"

// Option adjusts the parsed client options.
type Option func(*redis.Options)

// WithPoolSize overrides the connection pool size.
func WithPoolSize(n int) Option {
	return func(o *redis.Options) {
		if n > 0 {
			o.PoolSize = n
		}
	}
}

// WithDialTimeout overrides the dial timeout.
func WithDialTimeout(d time.Duration) Option {
	return func(o *redis.Options) {
		if d > 0 {
			o.DialTimeout = d
		}
	}
}

// NewClient creates a Redis client from redisURL and verifies it answers a
// ping before returning.
func NewClient(ctx context.Context, redisURL string, opts ...Option) (*redis.Client, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if options.ClientName == "" {
		options.ClientName = DefaultClientName
	}
	for _, opt := range opts {
		opt(options)
	}

	client := redis.NewClient(options)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
