package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

// Store implements domain.Store on Redis strings, namespaced by prefix
type Store struct {
	rdb    *goredis.Client
	prefix string
}

// NewStore connects to addr and checks the connection
func NewStore(addr, prefix string) (*Store, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Store{rdb: rdb, prefix: prefix}, nil
}

// Key returns the Redis key for a store key
func (s *Store) Key(key string) string {
	return s.prefix + key
}

// Load returns the value under key
func (s *Store) Load(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", domain.ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return v, nil
}

// Save replaces the value under key, without expiry
func (s *Store) Save(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close closes the client
func (s *Store) Close() error {
	return s.rdb.Close()
}
