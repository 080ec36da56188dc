// Package ledger maintains the persisted collection of calorie entries.
package ledger

import (
	"errors"
	"sync"
)

// ErrNoSnapshot is returned by BlobStore.Get when no blob exists for a key.
var ErrNoSnapshot = errors.New("ledger: no snapshot")

// BlobStore persists opaque whole-collection snapshots under string keys.
// Put overwrites the entire blob; a reader never observes a half-applied
// write.
type BlobStore interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// MemoryStore is an in-memory BlobStore for tests.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailPuts forces Put to fail, for persistence-failure tests.
	FailPuts bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Get returns the blob for key, or ErrNoSnapshot.
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put stores the blob for key.
func (m *MemoryStore) Put(key string, data []byte) error {
	if m.FailPuts {
		return errors.New("memory store: put disabled")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.blobs[key] = stored
	return nil
}
