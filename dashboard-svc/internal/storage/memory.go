package storage

import (
	"context"
	"maps"
	"slices"
	"sync"
)

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	feed   feed
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Load(_ context.Context, keys ...string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if v, ok := s.values[key]; ok {
			out[key] = v
		}
	}
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	maps.Copy(s.values, values)
	s.mu.Unlock()

	s.feed.publish(slices.Sorted(maps.Keys(values)))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.values, key)
	}
	s.mu.Unlock()

	s.feed.publish(keys)
	return nil
}

func (s *MemoryStore) Watch(ctx context.Context) (<-chan []string, error) {
	return s.feed.watch(ctx), nil
}
