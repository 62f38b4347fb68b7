package memory

import (
	"context"
	"sync"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

// Store implements domain.Store with in-memory storage
// This is perfect for development - nothing survives a restart
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Load returns the value under key
func (s *Store) Load(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.values[key]
	if !exists {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

// Save replaces the value under key
func (s *Store) Save(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Close is a no-op for the memory store
func (s *Store) Close() error {
	return nil
}
