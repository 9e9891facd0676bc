// File: pool/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide shared pools, one per element type.

package pool

import (
	"reflect"
	"sort"
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// sharedPool is the type-erased view the registry needs.
type sharedPool interface {
	Name() string
	Clear()
	Stats() api.PoolStats
	Retained() map[int]int
}

var (
	sharedMu    sync.RWMutex
	sharedPools = make(map[reflect.Type]sharedPool)
	sharedOpts  []Option
)

// Shared returns the process-wide pool for T, creating it on first use.
// Pools built here use DefaultOptions plus whatever SetDefaultOptions holds.
func Shared[T any]() *ArrayPool[T] {
	key := reflect.TypeFor[T]()
	sharedMu.RLock()
	p, ok := sharedPools[key]
	sharedMu.RUnlock()
	if ok {
		return p.(*ArrayPool[T])
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if p, ok := sharedPools[key]; ok {
		return p.(*ArrayPool[T])
	}
	o := DefaultOptions()
	for _, opt := range sharedOpts {
		opt(&o)
	}
	np, err := newArrayPool[T](o)
	if err != nil {
		np, _ = newArrayPool[T](DefaultOptions())
	}
	sharedPools[key] = np
	return np
}

// SetDefaultOptions sets the options used for shared pools created from now on.
// Already created pools keep their settings.
func SetDefaultOptions(opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return err
	}
	sharedMu.Lock()
	sharedOpts = append([]Option(nil), opts...)
	sharedMu.Unlock()
	return nil
}

// ClearShared drops retained arrays of every shared pool.
func ClearShared() {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	for _, p := range sharedPools {
		p.Clear()
	}
}

// ResetShared forgets every shared pool and the default options.
// Intended for tests and shutdown.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	for _, p := range sharedPools {
		p.Clear()
	}
	sharedPools = make(map[reflect.Type]sharedPool)
	sharedOpts = nil
}

// SharedSnapshot describes one shared pool for debug output.
type SharedSnapshot struct {
	Name     string
	Stats    api.PoolStats
	Retained map[int]int
}

// SharedStats snapshots every shared pool, sorted by name.
func SharedStats() []SharedSnapshot {
	sharedMu.RLock()
	out := make([]SharedSnapshot, 0, len(sharedPools))
	for _, p := range sharedPools {
		out = append(out, SharedSnapshot{
			Name:     p.Name(),
			Stats:    p.Stats(),
			Retained: p.Retained(),
		})
	}
	sharedMu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
