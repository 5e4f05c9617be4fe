package redis_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"github.com/redis/go-redis/v9"
)

// ExportCacheRepository caches rendered spreadsheet exports in Redis
type ExportCacheRepository struct {
	RedisUrl string
}

// NewExportCacheRepository creates a new ExportCacheRepository
func NewExportCacheRepository(redisUrl string) *ExportCacheRepository {
	return &ExportCacheRepository{RedisUrl: redisUrl}
}

// Save stores the rendered export under key for the given expiration
func (r *ExportCacheRepository) Save(key string, data []byte, expiration time.Duration) error {
	redisClient := helpers.RedisHelper(r.RedisUrl)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	if err := redisClient.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("error saving export to Redis under %s: %w", key, err)
	}

	return nil
}

// Find returns the cached export, or nil on a cache miss
func (r *ExportCacheRepository) Find(key string) ([]byte, error) {
	redisClient := helpers.RedisHelper(r.RedisUrl)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	data, err := redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching export %s from Redis: %w", key, err)
	}

	return data, nil
}
