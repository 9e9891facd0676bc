// File: facade/hioload.go
// Package facade
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Runtime wires configuration, logging, shared pool defaults and the control
// surface in one call.

package facade

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/momentics/hioload-mem/adapters"
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/control"
	"github.com/momentics/hioload-mem/internal/logutil"
	"github.com/momentics/hioload-mem/pool"
)

// Runtime owns the process-wide pieces of the memory subsystem.
type Runtime struct {
	config  *control.Config          // Immutable startup configuration
	control *adapters.ControlAdapter // Dynamic config, metrics and probes
	logger  *zap.Logger

	mu     sync.Mutex // Protects closed
	closed bool
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*Runtime)(nil)

// New validates cfg, installs the zap logger, applies cfg's pool section to
// shared pools created from now on, and exposes pool and platform state
// through Control. A nil cfg means control.Default().
//
// Setting "log.level" through Control().SetConfig changes the logger level
// in place.
func New(cfg *control.Config) (*Runtime, error) {
	if cfg == nil {
		cfg = control.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("facade: %w", err)
	}

	logger, err := logutil.Setup(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, fmt.Errorf("facade: logger init: %w", err)
	}
	if err := pool.SetDefaultOptions(cfg.PoolOptions()...); err != nil {
		return nil, fmt.Errorf("facade: pool defaults: %w", err)
	}

	r := &Runtime{
		config:  cfg,
		control: adapters.NewControlAdapter(),
		logger:  logger.Named("facade"),
	}
	r.control.OnReload(r.applyLogLevel)

	// Expose static configuration for observability.
	if err := r.control.SetConfig(map[string]any{
		"log.level":                  cfg.Log.Level,
		"log.encoding":               cfg.Log.Encoding,
		"pool.minimum_length":        cfg.Pool.MinimumLength,
		"pool.maximum_length":        cfg.Pool.MaximumLength,
		"pool.max_arrays_per_bucket": cfg.Pool.MaxArraysPerBucket,
		"pool.scrub":                 cfg.Pool.Scrub,
		"pool.check_returns":         cfg.Pool.CheckReturns,
		"metrics.enabled":            cfg.Metrics.Enabled,
	}); err != nil {
		return nil, err
	}

	r.logger.Info("runtime started",
		zap.String("log level", cfg.Log.Level),
		zap.Int("pool maximum length", cfg.Pool.MaximumLength),
		zap.String("scrub policy", cfg.Pool.Scrub),
	)
	return r, nil
}

// applyLogLevel re-reads "log.level" after a config change.
func (r *Runtime) applyLogLevel() {
	v, ok := r.control.Get("log.level")
	if !ok {
		return
	}
	level, ok := v.(string)
	if !ok {
		r.logger.Warn("ignoring non-string log.level", zap.Any("value", v))
		return
	}
	if err := logutil.SetLevel(level); err != nil {
		r.logger.Warn("ignoring invalid log.level", zap.String("value", level), zap.Error(err))
	}
}

// Config returns the startup configuration.
func (r *Runtime) Config() *control.Config {
	return r.config
}

// Control returns the dynamic config, metrics and probe surface.
func (r *Runtime) Control() api.Control {
	return r.control
}

// Stats is shorthand for Control().Stats().
func (r *Runtime) Stats() map[string]any {
	return r.control.Stats()
}

// Shutdown drops arrays retained by shared pools and flushes the logger.
// Later calls are no-ops.
func (r *Runtime) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	pool.ClearShared()
	r.logger.Info("runtime stopped")
	_ = r.logger.Sync()
	return nil
}
