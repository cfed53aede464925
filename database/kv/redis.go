package kv

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisOpTimeout = 2 * time.Second

// RedisStore keeps values in Redis under an optional key prefix. Values never expire.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, prefix string, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, prefix: prefix, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("kv: redis read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.logger.Warn("kv: redis write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RedisStore) Remove(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.logger.Warn("kv: redis delete failed", zap.String("key", key), zap.Error(err))
	}
}
