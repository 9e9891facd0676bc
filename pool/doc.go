// Package pool
// Author: momentics <momentics@gmail.com>
//
// Memory layer for hioload-mem.
// Implements a size-classed array pool: one bounded LIFO free list per
// power-of-two length, lock-per-bucket concurrency, deterministic scrubbing
// of arrays whose element type can hold references, and Prometheus counters.
// See arraypool.go for the allocator, rented.go for the disposable handle and
// default.go for the process-wide shared instances.
package pool
