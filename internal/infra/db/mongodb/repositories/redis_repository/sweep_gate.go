package redis_repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SweepGateRepository gates the cycle reset sweep to at most one run per
// calendar month per user, backed by Redis.
type SweepGateRepository struct {
	RedisUrl string
}

// NewSweepGateRepository creates a new SweepGateRepository
func NewSweepGateRepository(redisUrl string) *SweepGateRepository {
	return &SweepGateRepository{RedisUrl: redisUrl}
}

// Acquire reports whether the sweep may run for the given month. The first
// caller in a month wins; everyone else in the same month gets false. Keys
// expire after two months so stale entries clean themselves up.
func (r *SweepGateRepository) Acquire(userId primitive.ObjectID, month string) (bool, error) {
	redisClient := helpers.RedisHelper(r.RedisUrl)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.RedisTimeout)
	defer cancel()

	key := fmt.Sprintf("cycle_sweep:%s:%s", userId.Hex(), month)
	acquired, err := redisClient.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), 62*24*time.Hour).Result()
	if err != nil {
		return false, fmt.Errorf("error acquiring sweep gate for %s: %w", key, err)
	}

	return acquired, nil
}
