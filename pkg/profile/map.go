package profile

import (
	"sync"
	"time"
)

// Map is a mutable, in-memory Profile backed by a map.
//
// It is safe for concurrent use: readers take a shared lock, so values can
// be changed at runtime while requests are being classified against them.
type Map struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMap creates an empty Map profile.
func NewMap() *Map {
	return &Map{
		values: make(map[string]any),
	}
}

// Set stores a value for key, replacing any previous value.
func (m *Map) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Delete removes key, making subsequent lookups fall back to their default.
func (m *Map) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// GetBool returns the boolean value for key, or def when absent or not a bool.
func (m *Map) GetBool(key string, def bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key].(bool); ok {
		return v
	}
	return def
}

// GetDuration returns the duration value for key, or def when absent or not a duration.
func (m *Map) GetDuration(key string, def time.Duration) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key].(time.Duration); ok {
		return v
	}
	return def
}

// GetInt returns the integer value for key, or def when absent or not an int.
func (m *Map) GetInt(key string, def int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.values[key].(int); ok {
		return v
	}
	return def
}
