package db

import (
	"context"
	"fmt"
	"time"

	"cinema-checkout/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a nil client and no error when rate limiting is off.
func ConnectRedis(cfg config.RateLimitConfig) (*redis.Client, func(), error) {
	if !cfg.Enabled() {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			fmt.Printf("Error closing redis: %v\n", err)
		}
	}

	return client, cleanup, nil
}
