package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore is the default in-process backend. Single writer at a
// time is expected, but the mutex keeps concurrent readers safe.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	logger *zap.Logger
}

func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
		logger: logger,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	s.logger.Debug("Stored value", zap.String("key", key), zap.Int("size", len(value)))
	return nil
}
