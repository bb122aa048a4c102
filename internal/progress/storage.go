package progress

import (
	"context"
	"sync"
)

// Storage is the durable key-value port the progress service writes
// through. Implementations may be backed by SQLite, memory, or nothing
// at all; the service treats every failure as "no progress".
type Storage interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// NoopStorage is the Storage for persistence-free contexts. Reads miss,
// writes vanish.
type NoopStorage struct{}

func (NoopStorage) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (NoopStorage) Set(context.Context, string, string) error         { return nil }
func (NoopStorage) Remove(context.Context, string) error              { return nil }

// MemoryStorage is an in-memory Storage, used in tests and anywhere a
// throwaway backend is enough.
type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len returns the number of stored records.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
