// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown releases pooled memory and flushes ambient services.
type GracefulShutdown interface {
	// Shutdown clears retained arrays and syncs logging.
	Shutdown() error
}
