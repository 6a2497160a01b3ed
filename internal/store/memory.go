package store

import (
	"context"
	"sync"

	"github.com/Gauraangst/shorty/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository, used
// in tests and local development.
type MemoryStore struct {
	mu       sync.RWMutex
	mappings map[shortener.Code]shortener.Mapping
}

// NewMemoryStore creates a new in-memory mapping store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mappings: make(map[shortener.Code]shortener.Mapping),
	}
}

func (m *MemoryStore) Exists(_ context.Context, code shortener.Code) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.mappings[code]

	return ok, nil
}

func (m *MemoryStore) Insert(_ context.Context, mapping *shortener.Mapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.mappings[mapping.Code]; ok {
		return shortener.ErrCodeTaken
	}

	m.mappings[mapping.Code] = *mapping

	return nil
}

func (m *MemoryStore) GetByCode(_ context.Context, code shortener.Code) (*shortener.Mapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mapping, ok := m.mappings[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	return &mapping, nil
}

// Len reports the number of stored mappings.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.mappings)
}

var _ shortener.Repository = (*MemoryStore)(nil)
