// File: collections/valuelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package collections

import (
	"iter"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/memops"
)

// ValueList is a scratch list meant to live in a single function's frame.
//
// It must not be copied, stored in longer-lived structures, or captured by
// goroutines; go vet reports copies. It can start on a caller-supplied
// buffer (for example a stack array) and switches to pooled storage once
// that overflows. Use Escape to hand the contents to a PooledList.
//
//	var scratch [64]int
//	l := collections.NewValueListFrom(nil, scratch[:])
//	defer l.Dispose()
//
// The zero value is ready to use and rents from the shared pool.
type ValueList[T any] struct {
	_    noCopy
	core listCore[T]
}

// NewValueList returns an empty list renting from p (shared pool when nil).
func NewValueList[T any](p api.ArrayPool[T]) ValueList[T] {
	return ValueList[T]{core: newListCore(p, "ValueList")}
}

// NewValueListFrom starts the list on scratch. scratch is written to but
// never returned to a pool.
func NewValueListFrom[T any](p api.ArrayPool[T], scratch []T) ValueList[T] {
	core := newListCore(p, "ValueList")
	core.adopt(scratch)
	return ValueList[T]{core: core}
}

func (l *ValueList[T]) c() *listCore[T] {
	l.core.lazy("ValueList")
	return &l.core
}

// Add appends item.
func (l *ValueList[T]) Add(item T) error { return l.c().add(item) }

// AddRange appends items.
func (l *ValueList[T]) AddRange(items []T) error { return l.c().addRange(items) }

// Insert places item at index.
func (l *ValueList[T]) Insert(index int, item T) error { return l.c().insert(index, item) }

// InsertRange places items at index. items must not alias Span.
func (l *ValueList[T]) InsertRange(index int, items []T) error {
	return l.c().insertRange(index, items)
}

// RemoveAt deletes the element at index.
func (l *ValueList[T]) RemoveAt(index int) error { return l.c().removeAt(index) }

// RemoveRange deletes count elements starting at index.
func (l *ValueList[T]) RemoveRange(index, count int) error {
	return l.c().removeRange(index, count)
}

// At returns the element at index.
func (l *ValueList[T]) At(index int) (T, error) { return l.c().at(index) }

// Set overwrites the element at index.
func (l *ValueList[T]) Set(index int, item T) error { return l.c().set(index, item) }

// Len panics after Dispose.
func (l *ValueList[T]) Len() int {
	c := l.c()
	c.mustAlive()
	return c.count
}

// Cap panics after Dispose.
func (l *ValueList[T]) Cap() int {
	c := l.c()
	c.mustAlive()
	return c.capacity()
}

// Clear removes all elements and keeps the buffer.
func (l *ValueList[T]) Clear() error {
	c := l.c()
	if err := c.alive(); err != nil {
		return err
	}
	c.reset()
	return nil
}

// EnsureCapacity grows the buffer to at least n elements.
func (l *ValueList[T]) EnsureCapacity(n int) (int, error) { return l.c().ensure(n) }

// TrimBuffer shrinks the buffer to the size class that fits Len.
func (l *ValueList[T]) TrimBuffer() error { return l.c().trim() }

// ToSlice copies the elements into a new slice.
func (l *ValueList[T]) ToSlice() ([]T, error) {
	c := l.c()
	if err := c.alive(); err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

// CopyTo copies the elements into the prefix of dst.
func (l *ValueList[T]) CopyTo(dst []T) error { return l.c().copyTo(dst) }

// Span returns the elements in place; see PooledList.Span.
func (l *ValueList[T]) Span() []T { return l.c().span() }

// All enumerates the elements in index order.
func (l *ValueList[T]) All() iter.Seq2[int, T] { return l.c().all() }

// IndexFunc returns the index of the first element matching fn, or -1.
func (l *ValueList[T]) IndexFunc(fn func(T) bool) int {
	return memops.IndexFunc(l.c().span(), fn)
}

// Escape moves the contents into a new PooledList and disposes l. A list
// still on its scratch buffer is copied into pooled storage first.
func (l *ValueList[T]) Escape() (*PooledList[T], error) {
	c := l.c()
	if err := c.alive(); err != nil {
		return nil, err
	}
	out := NewPooledList(c.pool)
	if c.owner == ownsExternal {
		if err := out.core.addRange(c.buf[:c.count]); err != nil {
			return nil, err
		}
		c.reset()
	} else {
		out.core.buf = c.buf
		out.core.count = c.count
		out.core.owner = c.owner
		c.buf = nil
		c.count = 0
		c.owner = ownsNone
	}
	c.dispose()
	return out, nil
}

// Dispose returns pooled storage. Safe to call more than once.
func (l *ValueList[T]) Dispose() { l.c().dispose() }
