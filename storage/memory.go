package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryRecords keeps records in process memory. Used for tests and as
// the default backend for local runs.
type MemoryRecords struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{data: make(map[string][]byte)}
}

func (m *MemoryRecords) Load(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (m *MemoryRecords) Save(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}
