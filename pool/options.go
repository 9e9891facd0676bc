// File: pool/options.go
// Package pool defines functional options for ArrayPool construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/growth"
)

const (
	// DefaultMinimumLength is the smallest size class; Rent(0) yields this many slots.
	DefaultMinimumLength = 16
	// DefaultMaximumLength is the largest tracked size class.
	DefaultMaximumLength = 1 << 20
	// DefaultMaxArraysPerBucket bounds how many arrays one size class retains.
	DefaultMaxArraysPerBucket = 32
)

// ScrubPolicy decides what ReturnDefault means for a pool.
type ScrubPolicy uint8

const (
	// ScrubAuto scrubs only element types that may hold references.
	ScrubAuto ScrubPolicy = iota
	// ScrubAlways scrubs every returned array.
	ScrubAlways
	// ScrubNever leaves returned arrays untouched.
	ScrubNever
)

func (p ScrubPolicy) String() string {
	switch p {
	case ScrubAlways:
		return "always"
	case ScrubNever:
		return "never"
	default:
		return "auto"
	}
}

// Options holds ArrayPool construction parameters.
type Options struct {
	Name               string
	MinimumLength      int
	MaximumLength      int
	MaxArraysPerBucket int
	Scrub              ScrubPolicy
	CheckReturns       bool
	ExportMetrics      bool
	Logger             *zap.Logger
	Metrics            *PoolMetrics
}

// DefaultOptions returns the settings used by Shared pools.
func DefaultOptions() Options {
	return Options{
		MinimumLength:      DefaultMinimumLength,
		MaximumLength:      DefaultMaximumLength,
		MaxArraysPerBucket: DefaultMaxArraysPerBucket,
		Scrub:              ScrubAuto,
		ExportMetrics:      true,
	}
}

// Validate checks size-class bounds and bucket depth.
func (o Options) Validate() error {
	if !growth.IsPowerOfTwo(o.MinimumLength) {
		return api.InvalidArgument("minimum_length", o.MinimumLength)
	}
	if !growth.IsPowerOfTwo(o.MaximumLength) || o.MaximumLength < o.MinimumLength {
		return api.InvalidArgument("maximum_length", o.MaximumLength).
			WithContext("minimum_length", o.MinimumLength)
	}
	if o.MaxArraysPerBucket < 1 {
		return api.InvalidArgument("max_arrays_per_bucket", o.MaxArraysPerBucket)
	}
	if o.Scrub > ScrubNever {
		return api.InvalidArgument("scrub", o.Scrub)
	}
	return nil
}

// Option customizes pool initialization.
type Option func(*Options)

// WithName sets the label used in logs and metrics.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithMinimumLength sets the smallest size class (power of two).
func WithMinimumLength(n int) Option {
	return func(o *Options) {
		o.MinimumLength = n
	}
}

// WithMaximumLength sets the largest tracked size class (power of two).
// Larger requests bypass the pool.
func WithMaximumLength(n int) Option {
	return func(o *Options) {
		o.MaximumLength = n
	}
}

// WithMaxArraysPerBucket bounds retained arrays per size class.
func WithMaxArraysPerBucket(n int) Option {
	return func(o *Options) {
		o.MaxArraysPerBucket = n
	}
}

// WithScrubPolicy overrides the meaning of ReturnDefault.
func WithScrubPolicy(p ScrubPolicy) Option {
	return func(o *Options) {
		o.Scrub = p
	}
}

// WithReturnCheck enables double-return detection. Off by default.
// Only arrays retained by the pool are remembered, so arrays that are
// rented and never returned cost nothing.
func WithReturnCheck(enable bool) Option {
	return func(o *Options) {
		o.CheckReturns = enable
	}
}

// WithMetricsExport toggles mirroring of counters into Prometheus.
func WithMetricsExport(enable bool) Option {
	return func(o *Options) {
		o.ExportMetrics = enable
	}
}

// WithLogger sets the pool logger; defaults to the global logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics shares a metrics instance between pools.
func WithMetrics(m *PoolMetrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}
