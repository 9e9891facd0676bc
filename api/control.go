// File: api/control.go
// Package api defines Control interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages dynamic pool configuration and runtime statistics.
type Control interface {
	// GetConfig returns a snapshot of dynamic overrides.
	GetConfig() map[string]any
	// SetConfig merges overrides and fires reload listeners.
	SetConfig(cfg map[string]any) error
	// Stats merges metric snapshots with debug probe output.
	Stats() map[string]any
	OnReload(fn func())
	RegisterDebugProbe(name string, fn func() any)
}
