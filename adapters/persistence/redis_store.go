package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-view/internal/application/service"
	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-view/pkg/apperror"
)

type redisFragmentStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisFragmentStore stores each fragment as a plain string at prefix+key.
func NewRedisFragmentStore(rdb *redis.Client, prefix string) portfolio.Store {
	return &redisFragmentStore{rdb: rdb, prefix: prefix}
}

func (s *redisFragmentStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, apperror.NewUnavailable("failed to read fragment "+key, err)
	}
	return v, true, nil
}

func (s *redisFragmentStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return apperror.NewUnavailable("failed to write fragment "+key, err)
	}
	return nil
}

const viewCounterKey = "views"

type redisViewCounter struct {
	rdb *redis.Client
	key string
}

func NewRedisViewCounter(rdb *redis.Client, prefix string) service.ViewCounter {
	return &redisViewCounter{rdb: rdb, key: prefix + viewCounterKey}
}

func (c *redisViewCounter) Increment(ctx context.Context) (int64, error) {
	n, err := c.rdb.Incr(ctx, c.key).Result()
	if err != nil {
		return 0, apperror.NewUnavailable("failed to increment view counter", err)
	}
	return n, nil
}

func (c *redisViewCounter) Count(ctx context.Context) (int64, error) {
	n, err := c.rdb.Get(ctx, c.key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperror.NewUnavailable("failed to read view counter", err)
	}
	return n, nil
}
