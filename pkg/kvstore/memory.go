package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. State is lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
	hub  *hub
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
		hub:  newHub(),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()

	s.hub.publish(key, value)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	_, existed := s.data[key]
	delete(s.data, key)
	s.mu.Unlock()

	if existed {
		s.hub.publish(key, "")
	}
	return nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, key string) (<-chan string, func(), error) {
	ch, cancel := s.hub.subscribe(ctx, key)
	return ch, cancel, nil
}

func (s *MemoryStore) Close() error {
	s.hub.closeAll()
	return nil
}
