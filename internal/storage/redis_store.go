package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// publishedTTL bounds how long a run marker is kept.
const publishedTTL = 30 * 24 * time.Hour

// RedisStore keeps per-period delivery markers so a scheduled run posts at most once.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func publishedKey(channel, period string) string {
	return fmt.Sprintf("clipper:published:%s:%s", channel, period)
}

// IsPublished reports whether channel already delivered in period.
func (s *RedisStore) IsPublished(ctx context.Context, channel, period string) (bool, error) {
	res, err := s.rdb.Get(ctx, publishedKey(channel, period)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res == "1", nil
}

// MarkPublished records a delivery for channel in period.
func (s *RedisStore) MarkPublished(ctx context.Context, channel, period string) error {
	return s.rdb.Set(ctx, publishedKey(channel, period), "1", publishedTTL).Err()
}
