// Package store provides the persisted key-value backends and the typed
// gateway the core reads and writes its four collections through.
package store

import "sync"

// KeyValueStore is the external persistence collaborator. Each key holds one
// whole JSON document; writes replace the full value or fail leaving the
// prior value intact.
type KeyValueStore interface {
	// Get returns the stored value for key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set replaces the value for key.
	Set(key string, value []byte) error
	// Close releases backend resources.
	Close() error
}

// MemStore is an in-memory KeyValueStore used by tests.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailSet, when non-nil, is returned by Set calls. When FailKey is also
	// set, only writes to that key fail. Lets tests exercise write-failure
	// paths.
	FailSet error
	FailKey string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (m *MemStore) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

func (m *MemStore) Set(key string, value []byte) error {
	if m.FailSet != nil && (m.FailKey == "" || m.FailKey == key) {
		return m.FailSet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemStore) Close() error { return nil }
