package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the mapping in memory. Load and Save copy, so callers
// never share a map with the store.
type MemoryStore struct {
	mu    sync.Mutex
	creds Credentials
}

func NewMemoryStore(initial Credentials) *MemoryStore {
	return &MemoryStore{creds: initial.Clone()}
}

func (s *MemoryStore) Load(context.Context) (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds.Clone()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
