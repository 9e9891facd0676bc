// Package api
// Author: momentics
//
// Live debug support for pooled-memory workloads.

package api

// Debug exposes runtime introspection: retained arrays, hit rates, platform facts.
type Debug interface {
	// DumpState emits a snapshot of system state for diagnostics.
	DumpState() map[string]any

	// RegisterProbe dynamically registers new debug probes.
	RegisterProbe(name string, fn func() any)
}
