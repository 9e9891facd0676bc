// File: collections/core.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared storage engine of every growable buffer: a possibly wrapped window
// [head, head+count) over a pool-rented, caller-supplied or absent array.

package collections

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/growth"
	"github.com/momentics/hioload-mem/internal/memops"
	"github.com/momentics/hioload-mem/internal/refs"
	"github.com/momentics/hioload-mem/pool"
)

type ownership uint8

const (
	ownsNone     ownership = iota // no buffer yet
	ownsPooled                    // rented, goes back to pool
	ownsExternal                  // caller supplied, never returned
)

type listCore[T any] struct {
	pool     api.ArrayPool[T]
	buf      []T
	head     int // always 0 for list-shaped containers
	count    int
	limit    int // growth.MaxLength[T]
	exposed  int // prefix of buf handed out beyond count, scrubbed on release
	owner    ownership
	scrub    bool
	ready    bool
	disposed bool
	kind     string
}

func newListCore[T any](p api.ArrayPool[T], kind string) listCore[T] {
	var c listCore[T]
	c.init(p, kind)
	return c
}

func (c *listCore[T]) init(p api.ArrayPool[T], kind string) {
	if p == nil {
		p = pool.Shared[T]()
	}
	c.pool = p
	c.kind = kind
	c.scrub = refs.ContainsReferences[T]()
	c.limit = growth.MaxLength[T]()
	c.ready = true
}

// lazy makes the zero value usable with the shared pool.
func (c *listCore[T]) lazy(kind string) {
	if !c.ready {
		c.init(nil, kind)
	}
}

func (c *listCore[T]) adopt(scratch []T) {
	if len(scratch) > 0 {
		c.buf = scratch
		c.owner = ownsExternal
	}
}

func (c *listCore[T]) alive() error {
	if c.disposed {
		return api.Disposed(c.kind)
	}
	return nil
}

// mustAlive guards accessors that cannot report an error.
func (c *listCore[T]) mustAlive() {
	if c.disposed {
		panic(api.Disposed(c.kind))
	}
}

func (c *listCore[T]) capacity() int { return len(c.buf) }

// segments returns the live window as at most two slices in logical order.
func (c *listCore[T]) segments() (first, second []T) {
	if c.count == 0 {
		return nil, nil
	}
	end := c.head + c.count
	if end <= len(c.buf) {
		return c.buf[c.head:end], nil
	}
	return c.buf[c.head:], c.buf[:end-len(c.buf)]
}

// slot maps a logical index onto the backing array.
func (c *listCore[T]) slot(i int) int {
	j := c.head + i
	if j >= len(c.buf) {
		j -= len(c.buf)
	}
	return j
}

// compact copies the live window into the prefix of dst.
func (c *listCore[T]) compact(dst []T) {
	first, second := c.segments()
	memops.Move(dst, first, len(first))
	memops.Move(dst[len(first):], second, len(second))
}

// reserve guarantees room for extra more elements.
func (c *listCore[T]) reserve(extra int) error {
	if extra < 0 {
		return api.OutOfRange("count", extra)
	}
	if err := c.checkExtra(extra); err != nil {
		return err
	}
	if c.count > len(c.buf)-extra {
		return c.growTo(c.count+extra, nil)
	}
	return nil
}

// growTo replaces the buffer with one holding at least required elements.
// after, when set, writes into the new buffer once the live window is in
// place and before the old buffer is released.
func (c *listCore[T]) growTo(required int, after func(dst []T)) error {
	next, err := growth.NextWithin(len(c.buf), required-len(c.buf), c.limit)
	if err != nil {
		return err
	}
	return c.relocate(next, after)
}

// relocate moves the live window into a fresh rented buffer of at least
// length elements. Nothing changes unless the rent succeeds.
func (c *listCore[T]) relocate(length int, after func(dst []T)) error {
	dst, err := c.pool.Rent(length)
	if err != nil {
		return err
	}
	c.compact(dst)
	if after != nil {
		after(dst)
	}
	c.releaseBuffer()
	c.buf = dst
	c.head = 0
	c.owner = ownsPooled
	return nil
}

// releaseBuffer hands a rented buffer back, scrubbing the live window first
// when T can hold references. Vacated slots are already zero.
func (c *listCore[T]) releaseBuffer() {
	if c.owner != ownsPooled {
		c.exposed = 0
		return
	}
	if c.scrub {
		first, second := c.segments()
		clear(first)
		clear(second)
		clear(c.buf[:c.exposed])
	}
	c.exposed = 0
	c.pool.ReturnWith(c.buf, api.ReturnNone)
}

// expose records that buf[:n] may hold caller-written elements outside
// the live window.
func (c *listCore[T]) expose(n int) {
	if c.scrub {
		c.exposed = max(c.exposed, n)
	}
}

// vacate zeroes count slots starting at physical index i when T has references.
func (c *listCore[T]) vacate(i, count int) {
	if c.scrub && count > 0 {
		memops.Clear(c.buf[i:], count)
	}
}

func (c *listCore[T]) reset() {
	first, second := c.segments()
	memops.ClearIf(c.scrub, first, len(first))
	memops.ClearIf(c.scrub, second, len(second))
	memops.ClearIf(c.scrub, c.buf, c.exposed)
	c.exposed = 0
	c.head = 0
	c.count = 0
}

// ensure grows capacity to at least n and reports the resulting capacity.
func (c *listCore[T]) ensure(n int) (int, error) {
	if err := c.alive(); err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, api.OutOfRange("capacity", n)
	}
	if n > len(c.buf) {
		if err := c.growTo(n, nil); err != nil {
			return 0, err
		}
	}
	return len(c.buf), nil
}

// trim shrinks an oversized buffer to the size class that fits count.
// An empty container gives its buffer back entirely.
func (c *listCore[T]) trim() error {
	if err := c.alive(); err != nil {
		return err
	}
	if c.count == 0 {
		c.releaseBuffer()
		c.buf = nil
		c.head = 0
		c.owner = ownsNone
		return nil
	}
	target := growth.Trimmed(c.count, growth.DefaultInitialCapacity)
	if target >= len(c.buf) {
		return nil
	}
	dst, err := c.pool.Rent(target)
	if err != nil {
		return err
	}
	if len(dst) >= len(c.buf) {
		c.pool.ReturnWith(dst, api.ReturnNone)
		return nil
	}
	c.compact(dst)
	c.releaseBuffer()
	c.buf = dst
	c.head = 0
	c.owner = ownsPooled
	return nil
}

// snapshot copies the live window into a new slice.
func (c *listCore[T]) snapshot() []T {
	out := make([]T, c.count)
	c.compact(out)
	return out
}

func (c *listCore[T]) dispose() {
	if c.disposed {
		return
	}
	c.releaseBuffer()
	c.buf = nil
	c.head = 0
	c.count = 0
	c.owner = ownsNone
	c.disposed = true
}

// noCopy makes go vet's copylocks check flag copies of the embedding value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
