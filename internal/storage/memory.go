package storage

import (
	"context"
	"slices"
	"sync"
)

// Memory keeps collections in process memory. Used by tests and the "memory" driver.
type Memory struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ Collection = &Memory{}

func NewMemory() *Memory {
	return &Memory{items: map[string][]byte{}}
}

func (m *Memory) Load(_ context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.items[key]
	if !ok {
		return nil, ErrNotExist
	}
	return slices.Clone(data), nil
}

func (m *Memory) Save(_ context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = slices.Clone(data)
	return nil
}
