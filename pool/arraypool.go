// File: pool/arraypool.go
// Package pool implements size-classed array pooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/growth"
	"github.com/momentics/hioload-mem/internal/logutil"
	"github.com/momentics/hioload-mem/internal/memops"
	"github.com/momentics/hioload-mem/internal/refs"
)

// ArrayPool keeps one bounded free list per power-of-two length between
// MinimumLength and MaximumLength. It is safe for concurrent use; callers
// renting the same size class contend on one bucket lock, others do not.
type ArrayPool[T any] struct {
	name      string
	minLength int
	maxLength int
	maxAlloc  int // largest length make accepts for T
	minShift  int
	depth     int
	scrub     ScrubPolicy
	hasRefs   bool

	buckets []bucket[T] // buckets[i] holds arrays of length minLength<<i
	checker *returnChecker
	metrics *PoolMetrics
	logger  *zap.Logger
}

var _ api.ArrayPool[int] = (*ArrayPool[int])(nil)

// NewArrayPool builds a pool with DefaultOptions overridden by opts.
func NewArrayPool[T any](opts ...Option) (*ArrayPool[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newArrayPool[T](o)
}

// MustNewArrayPool is NewArrayPool that panics on invalid options.
func MustNewArrayPool[T any](opts ...Option) *ArrayPool[T] {
	p, err := NewArrayPool[T](opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func newArrayPool[T any](o Options) (*ArrayPool[T], error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Name == "" {
		o.Name = reflect.TypeFor[T]().String()
	}
	p := &ArrayPool[T]{
		name:      o.Name,
		minLength: o.MinimumLength,
		maxLength: o.MaximumLength,
		maxAlloc:  growth.MaxLength[T](),
		minShift:  growth.Log2(o.MinimumLength),
		depth:     o.MaxArraysPerBucket,
		scrub:     o.Scrub,
		hasRefs:   refs.ContainsReferences[T](),
		metrics:   o.Metrics,
		logger:    o.Logger,
	}
	if p.metrics == nil {
		p.metrics = NewPoolMetrics(p.name, o.ExportMetrics)
	}
	if p.logger == nil {
		p.logger = logutil.Named("pool")
	}
	p.logger = p.logger.With(zap.String("pool", p.name))
	if o.CheckReturns {
		p.checker = newReturnChecker()
	}

	classes := growth.Log2(o.MaximumLength) - p.minShift + 1
	p.buckets = make([]bucket[T], classes)
	for i := range p.buckets {
		p.buckets[i].init(p.minLength<<i, p.depth)
	}

	p.logger.Info("array pool created",
		zap.Int("minimum length", p.minLength),
		zap.Int("maximum length", p.maxLength),
		zap.Int("size classes", classes),
		zap.Int("arrays per bucket", p.depth),
		zap.Stringer("scrub policy", p.scrub),
		zap.Bool("element has references", p.hasRefs),
		zap.Bool("return check", p.checker != nil),
	)
	return p, nil
}

// Name returns the label used in logs and metrics.
func (p *ArrayPool[T]) Name() string { return p.name }

// MinimumLength returns the smallest size class.
func (p *ArrayPool[T]) MinimumLength() int { return p.minLength }

// MaximumLength returns the largest tracked size class.
func (p *ArrayPool[T]) MaximumLength() int { return p.maxLength }

// MaxArraysPerBucket returns the retained-array bound per size class.
func (p *ArrayPool[T]) MaxArraysPerBucket() int { return p.depth }

// ScrubsByDefault reports whether Return zeroes arrays.
func (p *ArrayPool[T]) ScrubsByDefault() bool {
	switch p.scrub {
	case ScrubAlways:
		return true
	case ScrubNever:
		return false
	default:
		return p.hasRefs
	}
}

// bucketFor maps a tracked length onto its bucket index, or -1.
func (p *ArrayPool[T]) bucketFor(length int) int {
	if length < p.minLength || length > p.maxLength || !growth.IsPowerOfTwo(length) {
		return -1
	}
	return growth.Log2(length) - p.minShift
}

// Rent returns an array of the smallest size class that holds
// max(minimumLength, MinimumLength) elements. Requests above MaximumLength
// get an exact-length array that the pool does not track. Lengths no
// slice of T can have are out of range.
func (p *ArrayPool[T]) Rent(minimumLength int) ([]T, error) {
	if minimumLength < 0 || minimumLength > p.maxAlloc {
		return nil, api.OutOfRange("minimumLength", minimumLength)
	}
	if minimumLength > p.maxLength {
		p.metrics.RecordUntracked()
		p.logger.Debug("untracked rent", zap.Int("length", minimumLength))
		return make([]T, minimumLength), nil
	}

	length := growth.SizeClass(minimumLength, p.minLength)
	b := &p.buckets[p.bucketFor(length)]
	arr := b.pop()
	if arr == nil {
		p.metrics.RecordMiss()
		return make([]T, length), nil
	}
	p.metrics.RecordHit()
	if p.checker != nil {
		p.checker.rented(keyOf(arr))
	}
	return arr, nil
}

// Return hands array back, scrubbing according to the pool's ScrubPolicy.
func (p *ArrayPool[T]) Return(array []T) {
	p.ReturnWith(array, api.ReturnDefault)
}

// ReturnWith hands array back. Arrays whose length is not a tracked size
// class are ignored, as are returns into a full bucket.
func (p *ArrayPool[T]) ReturnWith(array []T, option api.ReturnOption) {
	if array == nil {
		return
	}
	idx := p.bucketFor(len(array))
	if idx < 0 {
		p.metrics.RecordDiscard()
		p.logger.Debug("return of untracked length ignored", zap.Int("length", len(array)))
		return
	}

	var key uintptr
	if p.checker != nil {
		key = keyOf(array)
		if err := p.checker.returning(key); err != nil {
			p.logger.Error("double return detected", zap.Error(err))
			panic(err)
		}
	}

	if p.shouldScrub(option) {
		memops.Clear(array, len(array))
		p.metrics.RecordScrub()
	}

	if !p.buckets[idx].push(array[:len(array):len(array)]) {
		if p.checker != nil {
			p.checker.forget(key)
		}
		p.metrics.RecordDiscard()
		p.logger.Debug("bucket full, array dropped", zap.Int("length", len(array)))
		return
	}
	p.metrics.RecordReturn()
}

func (p *ArrayPool[T]) shouldScrub(option api.ReturnOption) bool {
	switch option {
	case api.ReturnClear:
		return true
	case api.ReturnNone:
		return false
	default:
		return p.ScrubsByDefault()
	}
}

// Clear drops every retained array.
func (p *ArrayPool[T]) Clear() {
	dropped := 0
	for i := range p.buckets {
		arrays := p.buckets[i].drain()
		dropped += len(arrays)
		if p.checker != nil {
			for _, arr := range arrays {
				p.checker.forget(keyOf(arr))
			}
		}
	}
	p.logger.Debug("array pool cleared", zap.Int("dropped", dropped))
}

// Stats returns accounting counters.
func (p *ArrayPool[T]) Stats() api.PoolStats {
	return p.metrics.Stats()
}

// Retained reports how many arrays each size class holds, keyed by length.
func (p *ArrayPool[T]) Retained() map[int]int {
	out := make(map[int]int, len(p.buckets))
	for i := range p.buckets {
		if n := p.buckets[i].count(); n > 0 {
			out[p.buckets[i].length] = n
		}
	}
	return out
}
