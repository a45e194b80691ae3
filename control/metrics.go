// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for pool-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/momentics/hioload-mem/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// LastUpdated reports when any metric was last written.
func (mr *MetricsRegistry) LastUpdated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// PublishPoolStats flattens a pool's stats snapshot into the registry
// under "<name>.<field>" keys.
func PublishPoolStats(mr *MetricsRegistry, name string, fl api.FreeList) {
	st := fl.Stats()
	mr.Set(fmt.Sprintf("%s.total_alloc", name), st.TotalAlloc)
	mr.Set(fmt.Sprintf("%s.total_free", name), st.TotalFree)
	mr.Set(fmt.Sprintf("%s.in_use", name), st.InUse)
	mr.Set(fmt.Sprintf("%s.chunks", name), st.Chunks)
	mr.Set(fmt.Sprintf("%s.free_slots", name), st.FreeSlots)
	mr.Set(fmt.Sprintf("%s.refill_size", name), st.RefillSize)
}
