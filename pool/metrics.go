// File: pool/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool counters: atomic totals for Stats, mirrored into Prometheus.

package pool

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/momentics/hioload-mem/api"
)

var (
	// poolRents tracks Rent calls per pool.
	poolRents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "rents_total",
		Help:      "Total number of Rent calls that produced an array",
	}, []string{"pool"})

	// poolHits tracks rents served from a bucket.
	poolHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "hits_total",
		Help:      "Total number of rents served from a retained array",
	}, []string{"pool"})

	// poolMisses tracks fresh allocations of a tracked size class.
	poolMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "misses_total",
		Help:      "Total number of rents that allocated a new tracked array",
	}, []string{"pool"})

	// poolUntracked tracks rents above the maximum size class.
	poolUntracked = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "untracked_total",
		Help:      "Total number of rents above the maximum tracked length",
	}, []string{"pool"})

	// poolReturns tracks arrays accepted back into a bucket.
	poolReturns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "returns_total",
		Help:      "Total number of arrays accepted into a bucket",
	}, []string{"pool"})

	// poolDiscards tracks dropped arrays (full bucket or unknown length).
	poolDiscards = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "discards_total",
		Help:      "Total number of returned arrays left to the garbage collector",
	}, []string{"pool"})

	// poolScrubs tracks arrays zeroed on return.
	poolScrubs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hioload",
		Subsystem: "arraypool",
		Name:      "scrubs_total",
		Help:      "Total number of arrays zeroed on return",
	}, []string{"pool"})
)

// PoolMetrics tracks pool utilization for observability.
type PoolMetrics struct {
	rents     atomic.Uint64
	hits      atomic.Uint64
	misses    atomic.Uint64
	untracked atomic.Uint64
	returns   atomic.Uint64
	discards  atomic.Uint64
	scrubs    atomic.Uint64

	// nil when Prometheus export is off
	exported *exportedCounters
}

type exportedCounters struct {
	rents, hits, misses, untracked, returns, discards, scrubs prometheus.Counter
}

// NewPoolMetrics creates counters for the named pool. With export set the
// counters are mirrored into the default Prometheus registry.
func NewPoolMetrics(name string, export bool) *PoolMetrics {
	m := &PoolMetrics{}
	if export {
		m.exported = &exportedCounters{
			rents:     poolRents.WithLabelValues(name),
			hits:      poolHits.WithLabelValues(name),
			misses:    poolMisses.WithLabelValues(name),
			untracked: poolUntracked.WithLabelValues(name),
			returns:   poolReturns.WithLabelValues(name),
			discards:  poolDiscards.WithLabelValues(name),
			scrubs:    poolScrubs.WithLabelValues(name),
		}
	}
	return m
}

// RecordHit counts a rent served from a bucket.
func (m *PoolMetrics) RecordHit() {
	m.rents.Add(1)
	m.hits.Add(1)
	if m.exported != nil {
		m.exported.rents.Inc()
		m.exported.hits.Inc()
	}
}

// RecordMiss counts a rent that allocated a tracked size class.
func (m *PoolMetrics) RecordMiss() {
	m.rents.Add(1)
	m.misses.Add(1)
	if m.exported != nil {
		m.exported.rents.Inc()
		m.exported.misses.Inc()
	}
}

// RecordUntracked counts a rent above the maximum size class.
func (m *PoolMetrics) RecordUntracked() {
	m.rents.Add(1)
	m.untracked.Add(1)
	if m.exported != nil {
		m.exported.rents.Inc()
		m.exported.untracked.Inc()
	}
}

// RecordReturn counts an array accepted into a bucket.
func (m *PoolMetrics) RecordReturn() {
	m.returns.Add(1)
	if m.exported != nil {
		m.exported.returns.Inc()
	}
}

// RecordDiscard counts an array dropped on return.
func (m *PoolMetrics) RecordDiscard() {
	m.discards.Add(1)
	if m.exported != nil {
		m.exported.discards.Inc()
	}
}

// RecordScrub counts an array zeroed on return.
func (m *PoolMetrics) RecordScrub() {
	m.scrubs.Add(1)
	if m.exported != nil {
		m.exported.scrubs.Inc()
	}
}

// Stats returns current pool statistics.
func (m *PoolMetrics) Stats() api.PoolStats {
	return api.PoolStats{
		Rents:     m.rents.Load(),
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Untracked: m.untracked.Load(),
		Returns:   m.returns.Load(),
		Discards:  m.discards.Load(),
		Scrubs:    m.scrubs.Load(),
	}
}
