// Package cache provides an in-process key-value store with per-entry expiry.
package cache

import (
	"sync"
	"time"
)

// Store is a key-value cache with per-entry TTL and explicit eviction.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(key K)
}

type entry[V any] struct {
	value   V
	expires time.Time
}

// Memory is a Store backed by a map. Expired entries are never returned; they are removed
// on read or by Sweep.
type Memory[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]entry[V]
	clock func() time.Time
}

// NewMemory returns an empty Memory store.
func NewMemory[K comparable, V any]() *Memory[K, V] {
	return &Memory[K, V]{
		items: make(map[K]entry[V]),
		clock: time.Now,
	}
}

func (m *Memory[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if m.clock().Before(e.expires) {
		return e.value, true
	}

	m.mu.Lock()
	// The entry may have been replaced since the read lock was released.
	if cur, ok := m.items[key]; ok && !m.clock().Before(cur.expires) {
		delete(m.items, key)
	}
	m.mu.Unlock()
	return zero, false
}

// Set stores value for ttl. A non-positive ttl removes the key.
func (m *Memory[K, V]) Set(key K, value V, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ttl <= 0 {
		delete(m.items, key)
		return
	}
	m.items[key] = entry[V]{value: value, expires: m.clock().Add(ttl)}
}

func (m *Memory[K, V]) Delete(key K) {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included until swept.
func (m *Memory[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Sweep removes every expired entry and returns how many were removed.
func (m *Memory[K, V]) Sweep() int {
	now := m.clock()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, e := range m.items {
		if !now.Before(e.expires) {
			delete(m.items, k)
			n++
		}
	}
	return n
}
