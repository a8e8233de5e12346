package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// ConnectRedis accepts either a redis:// URL or a bare host:port address.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, errors.New("REDIS_URL is empty")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// ResponseCache keeps upstream response bodies in Redis so several API instances share
// them. It satisfies news.ResponseCache.
type ResponseCache struct {
	client *redis.Client
}

func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{client: client}
}

func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (c *ResponseCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, body, ttl).Err()
}

func (c *ResponseCache) Close() error {
	return c.client.Close()
}
