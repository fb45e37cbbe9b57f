package documents

import (
	"context"
	"sync"
)

// MemoryRepository keeps documents in process memory. It backs the "memory" store driver
// used for local development and tests; nothing survives a restart.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]map[string][]byte
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]map[string][]byte)}
}

// Get is a Repository implementation for retrieving a document body
func (m *MemoryRepository) Get(ctx context.Context, owner, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	body, ok := m.docs[owner][key]
	if !ok {
		return nil, ErrDocumentNotFound
	}
	return append([]byte(nil), body...), nil
}

// Put is a Repository implementation for storing a document body
func (m *MemoryRepository) Put(ctx context.Context, owner, key string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.docs[owner] == nil {
		m.docs[owner] = make(map[string][]byte)
	}
	m.docs[owner][key] = append([]byte(nil), body...)
	return nil
}

// Delete is a Repository implementation for removing a document
func (m *MemoryRepository) Delete(ctx context.Context, owner, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs[owner], key)
	return nil
}

// DeleteOwner is a Repository implementation for removing a namespace
func (m *MemoryRepository) DeleteOwner(ctx context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.docs, owner)
	return nil
}
