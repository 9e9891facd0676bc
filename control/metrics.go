// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics snapshot registry.
// Pool counters are flattened into "pool.<name>.<counter>" keys.

package control

import (
	"maps"
	"sync"
	"time"

	"github.com/momentics/hioload-mem/api"
)

// MetricsRegistry holds the latest value of each metric key.
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

// SetPoolStats records one pool's counters.
func (mr *MetricsRegistry) SetPoolStats(name string, st api.PoolStats) {
	prefix := "pool." + name + "."
	mr.mu.Lock()
	mr.metrics[prefix+"rents"] = st.Rents
	mr.metrics[prefix+"hits"] = st.Hits
	mr.metrics[prefix+"misses"] = st.Misses
	mr.metrics[prefix+"untracked"] = st.Untracked
	mr.metrics[prefix+"returns"] = st.Returns
	mr.metrics[prefix+"discards"] = st.Discards
	mr.metrics[prefix+"scrubs"] = st.Scrubs
	mr.metrics[prefix+"hit_rate"] = st.HitRate()
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return maps.Clone(mr.metrics)
}

// Updated reports when a metric last changed; zero if never.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
