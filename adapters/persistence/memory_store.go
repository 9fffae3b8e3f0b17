package persistence

import (
	"context"
	"sync"

	"github.com/khoahotran/portfolio-view/internal/domain/portfolio"
)

type memoryFragmentStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryFragmentStore() portfolio.Store {
	return &memoryFragmentStore{data: make(map[string]string)}
}

func (s *memoryFragmentStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memoryFragmentStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
