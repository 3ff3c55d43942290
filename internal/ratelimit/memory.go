package ratelimit

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store backed by a mutex-guarded map. Entries
// are never evicted, which is acceptable for the coarse cooldown this backs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]int64)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ts, ok := s.entries[key]
	return ts, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, ts int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = ts
	return nil
}
