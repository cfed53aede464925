// Package kv is the persistent key-value capability used for client-side state
// (favorites, theme, last known location).
//
// Every implementation is best effort: a failed read is reported as a missing
// key and a failed write is dropped. Errors are logged, never returned.
package kv

import (
	"context"
	"strings"

	"apna/config"
	"apna/utils"

	"go.uber.org/zap"
)

type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Remove(ctx context.Context, key string)
}

// Open builds the store selected by cfg.KVBackend. If that backend cannot be
// reached it logs the failure and falls back to memory. The returned close
// function is always non-nil.
func Open(cfg config.Config, logger *zap.Logger) (Store, func() error) {
	switch strings.ToLower(cfg.KVBackend) {
	case "bolt":
		store, err := OpenBoltStore(cfg.KVPath, logger)
		if err != nil {
			logger.Warn("kv: bolt store unavailable, using memory", zap.String("path", cfg.KVPath), zap.Error(err))
			break
		}
		return store, store.Close
	case "redis":
		client, err := utils.NewRedisClient(cfg, cfg.RedisKVDB)
		if err != nil {
			logger.Warn("kv: redis store unavailable, using memory", zap.Error(err))
			break
		}
		return NewRedisStore(client, "", logger), client.Close
	case "", "memory":
	default:
		logger.Warn("kv: unknown backend, using memory", zap.String("backend", cfg.KVBackend))
	}
	return NewMemoryStore(), func() error { return nil }
}
