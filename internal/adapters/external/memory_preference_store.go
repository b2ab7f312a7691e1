package external

import (
	"context"
	"sync"

	"weatherwidget.app/pkg/errors"
)

// MemoryPreferenceStore keeps preferences for the lifetime of the process
type MemoryPreferenceStore struct {
	data  map[string]string
	mutex sync.RWMutex
}

func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{
		data: make(map[string]string),
	}
}

func (s *MemoryPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("preference key cannot be empty")
	}

	s.mutex.RLock()
	value, exists := s.data[key]
	s.mutex.RUnlock()

	if !exists {
		return "", errors.NewNotFoundError("preference not found")
	}
	return value, nil
}

func (s *MemoryPreferenceStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryPreferenceStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryPreferenceStore) Close() error {
	return nil
}
