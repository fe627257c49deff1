package services

import "sync"

// SharedStore is the process-wide key/value store for runtime toggles
// ("debug" and friends).
type SharedStore struct {
	mu     sync.RWMutex
	values map[string]any
}

var sharedStore = &SharedStore{values: make(map[string]any)}

func Shared() *SharedStore {
	return sharedStore
}

func (s *SharedStore) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *SharedStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}
