package cache

import (
	"sync"
	"time"
)

type ttlEntry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLMap is an in-process map whose entries expire after a fixed TTL.
type TTLMap struct {
	mu   sync.RWMutex
	data map[string]*ttlEntry
	ttl  time.Duration
	now  func() time.Time
}

func NewTTLMap(ttl time.Duration) *TTLMap {
	return &TTLMap{
		data: make(map[string]*ttlEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *TTLMap) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	entry, exists := m.data[key]
	if !exists {
		m.mu.RUnlock()
		return nil, false
	}
	expired := m.now().After(entry.expiresAt)
	value := entry.value
	m.mu.RUnlock()

	if expired {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && m.now().After(current.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return value, true
}

func (m *TTLMap) Set(key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = &ttlEntry{
		value:     value,
		expiresAt: m.now().Add(m.ttl),
	}
}

func (m *TTLMap) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *TTLMap) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]*ttlEntry)
}

// Len counts entries, expired ones included until they are read.
func (m *TTLMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
