package kv

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const kvBucket = "kv"

// BoltStore persists values in a single BoltDB bucket.
type BoltStore struct {
	db     *bbolt.DB
	logger *zap.Logger
}

// OpenBoltStore opens (or creates) the database file at path.
func OpenBoltStore(path string, logger *zap.Logger) (*BoltStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("kv path is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open kv db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(kvBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv bucket: %w", err)
	}
	return &BoltStore{db: db, logger: logger}, nil
}

func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *BoltStore) Get(ctx context.Context, key string) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kvBucket))
		if bucket == nil {
			return fmt.Errorf("kv bucket is missing")
		}
		if raw := bucket.Get([]byte(key)); raw != nil {
			value, found = string(raw), true
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("kv: bolt read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, found
}

func (s *BoltStore) Set(ctx context.Context, key, value string) {
	if ctx.Err() != nil {
		return
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kvBucket))
		if bucket == nil {
			return fmt.Errorf("kv bucket is missing")
		}
		return bucket.Put([]byte(key), []byte(value))
	})
	if err != nil {
		s.logger.Warn("kv: bolt write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *BoltStore) Remove(ctx context.Context, key string) {
	if ctx.Err() != nil {
		return
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(kvBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		s.logger.Warn("kv: bolt delete failed", zap.String("key", key), zap.Error(err))
	}
}
