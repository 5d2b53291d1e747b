package memory

import (
	"context"
	"sync"

	"github.com/njprem/VisitEgypt_BackEnd/internal/repository/ports"
)

type LocalStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{values: make(map[string][]byte)}
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *LocalStorage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var _ ports.LocalStorage = (*LocalStorage)(nil)
