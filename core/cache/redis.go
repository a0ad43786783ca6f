package cache

import (
	"context"
	"fmt"
	"time"

	"internhub/core/config"
	"internhub/core/constants"
	"internhub/core/logger"

	"github.com/redis/go-redis/v9"
)

type ICache interface {
	AddToTokenBlacklist(ctx context.Context, token string) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	IncrLoginAttempts(ctx context.Context, key string) (int64, error)
	IsLoginBlocked(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Reset(ctx context.Context, key string) error
	Close() error
}

type Cache struct {
	client *redis.Client
}

func InitCache(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to redis", "error", err, "addr", cfg.Addr)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &Cache{client: client}, nil
}

// AddToTokenBlacklist marks a token as revoked until its natural expiry
// window has passed.
func (c *Cache) AddToTokenBlacklist(ctx context.Context, token string) error {
	key := constants.RedisKeyTokenBlacklist + token
	ttl := time.Duration(config.Get().JWT.AccessTokenTTL) * time.Minute
	return c.client.Set(ctx, key, "1", ttl).Err()
}

func (c *Cache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	key := constants.RedisKeyTokenBlacklist + token
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Cache) IncrLoginAttempts(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, constants.RedisKeyLoginAttempts+key).Result()
}

func (c *Cache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Get(ctx, constants.RedisKeyLoginAttempts+key).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= constants.MaxLoginAttempts, nil
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, constants.RedisKeyLoginAttempts+key, ttl).Err()
}

func (c *Cache) Reset(ctx context.Context, key string) error {
	return c.client.Del(ctx, constants.RedisKeyLoginAttempts+key).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
