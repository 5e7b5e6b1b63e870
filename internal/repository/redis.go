package repository

import (
	"context"
	"time"

	"mealtrack/internal/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the optional meal-list cache. The server runs
// without it, so callers treat an error here as a warning, not a
// startup failure.
func InitRedis(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return rdb, nil
}
