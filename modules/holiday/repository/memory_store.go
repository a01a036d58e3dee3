package repository

import (
	"context"
	"sync"

	"equimeet/modules/holiday/entity"
)

// MemoryStore is an in-process HolidayStore used in tests and
// single-node setups without a durable backend.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[entity.CacheKey]entity.CacheEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[entity.CacheKey]entity.CacheEntry)}
}

func (m *MemoryStore) Get(_ context.Context, countryCode string, year int) (*entity.CacheEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[entity.CacheKey{CountryCode: countryCode, Year: year}]
	if !ok {
		return nil, nil
	}
	copied := entry
	return &copied, nil
}

func (m *MemoryStore) Upsert(_ context.Context, entry *entity.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[entry.Key()] = *entry
	return nil
}

func (m *MemoryStore) Keys(_ context.Context) ([]entity.CacheKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]entity.CacheKey, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys, nil
}
