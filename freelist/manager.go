// File: freelist/manager.go
// Author: momentics <momentics@gmail.com>
//
// Size-class pool manager with transparent pool construction.
// All pools it hands out are the thread-safe variant, so one manager
// can serve the whole process.

package freelist

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// Manager provides one concurrent pool per element size.
type Manager struct {
	mu    sync.RWMutex
	pools map[int]*Concurrent // key: element size in bytes
	src   api.ChunkSource
}

// NewManager creates a manager. A nil source means the platform default.
func NewManager(src api.ChunkSource) *Manager {
	return &Manager{
		pools: make(map[int]*Concurrent),
		src:   src,
	}
}

// GetPool obtains or creates the pool for elemSize with default policy.
func (m *Manager) GetPool(elemSize int) (api.FreeList, error) {
	m.mu.RLock()
	pool, ok := m.pools[elemSize]
	m.mu.RUnlock()
	if ok {
		return pool, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if pool, ok := m.pools[elemSize]; ok {
		return pool, nil
	}
	pool, err := NewConcurrent(Config{ElemSize: elemSize, Source: m.src})
	if err != nil {
		return nil, err
	}
	m.pools[elemSize] = pool
	return pool, nil
}

// Snapshot returns current stats for every pool, keyed by element size.
func (m *Manager) Snapshot() map[int]api.FreeListStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]api.FreeListStats, len(m.pools))
	for size, pool := range m.pools {
		out[size] = pool.Stats()
	}
	return out
}

// Destroy tears down every pool the manager owns.
func (m *Manager) Destroy() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var first error
	for size, pool := range m.pools {
		if err := pool.Destroy(); err != nil && first == nil {
			first = err
		}
		delete(m.pools, size)
	}
	return first
}

var (
	defaultOnce sync.Once
	defaultMgr  *Manager
)

// DefaultManager returns a process-wide Manager so all components reuse
// the same size-class pools instead of fragmenting allocations.
func DefaultManager() *Manager {
	defaultOnce.Do(func() {
		defaultMgr = NewManager(nil)
	})
	return defaultMgr
}

// DefaultPool is a shortcut to fetch a pool from the default manager.
func DefaultPool(elemSize int) (api.FreeList, error) {
	return DefaultManager().GetPool(elemSize)
}
