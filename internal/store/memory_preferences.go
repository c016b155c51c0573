package store

import (
	"context"
	"sync"
)

// MemoryPreferences is a [Preferences] kept in process memory. It backs
// tests and runs where nothing should reach the disk.
type MemoryPreferences struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryPreferences returns an empty [MemoryPreferences].
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{values: make(map[string]string)}
}

func (m *MemoryPreferences) GetString(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryPreferences) PutStrings(_ context.Context, values map[string]string) error {
	for key := range values {
		if key == "" {
			return ErrInvalidKey
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, value := range values {
		m.values[key] = value
	}
	return nil
}
