package db

import (
	"fmt"
	"sync"
)

// MemoryRedisClient keeps keys in process memory. Used when no Redis is configured and in tests.
type MemoryRedisClient struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewMemoryRedisClient initializes a new MemoryRedisClient.
func NewMemoryRedisClient() *MemoryRedisClient {
	return &MemoryRedisClient{
		data: make(map[string]string),
	}
}

// Set stores a key-value pair.
func (m *MemoryRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key.
func (m *MemoryRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MemoryRedisClient) Ping() error {
	return nil
}

func (m *MemoryRedisClient) Close() error {
	return nil
}
