// File: collections/list.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package collections

import (
	"iter"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/memops"
)

// PooledList is a heap-scoped growable list whose storage is rented from an
// ArrayPool and returned on Dispose. It is not safe for concurrent use; see
// ConcurrentList.
type PooledList[T any] struct {
	core listCore[T]
}

var _ api.Sequence[int] = (*PooledList[int])(nil)

// NewPooledList returns an empty list renting from p, or from the shared
// pool for T when p is nil. Nothing is rented until the first write.
func NewPooledList[T any](p api.ArrayPool[T]) *PooledList[T] {
	l := &PooledList[T]{}
	l.core.init(p, "PooledList")
	return l
}

// NewPooledListWithCapacity rents room for capacity elements up front.
func NewPooledListWithCapacity[T any](p api.ArrayPool[T], capacity int) (*PooledList[T], error) {
	l := NewPooledList(p)
	if _, err := l.core.ensure(capacity); err != nil {
		return nil, err
	}
	return l, nil
}

// Add appends item.
func (l *PooledList[T]) Add(item T) error { return l.core.add(item) }

// AddRange appends items, growing at most once.
func (l *PooledList[T]) AddRange(items []T) error { return l.core.addRange(items) }

// Insert places item at index, shifting the tail up.
func (l *PooledList[T]) Insert(index int, item T) error { return l.core.insert(index, item) }

// InsertRange places items at index. items must not alias Span.
func (l *PooledList[T]) InsertRange(index int, items []T) error {
	return l.core.insertRange(index, items)
}

// RemoveAt deletes the element at index, shifting the tail down.
func (l *PooledList[T]) RemoveAt(index int) error { return l.core.removeAt(index) }

// RemoveRange deletes count elements starting at index.
func (l *PooledList[T]) RemoveRange(index, count int) error {
	return l.core.removeRange(index, count)
}

// At returns the element at index.
func (l *PooledList[T]) At(index int) (T, error) { return l.core.at(index) }

// Set overwrites the element at index.
func (l *PooledList[T]) Set(index int, item T) error { return l.core.set(index, item) }

// Len returns the number of elements. Panics after Dispose.
func (l *PooledList[T]) Len() int {
	l.core.mustAlive()
	return l.core.count
}

// Cap returns the capacity of the current buffer. Panics after Dispose.
func (l *PooledList[T]) Cap() int {
	l.core.mustAlive()
	return l.core.capacity()
}

// Clear removes all elements and keeps the buffer.
func (l *PooledList[T]) Clear() error {
	if err := l.core.alive(); err != nil {
		return err
	}
	l.core.reset()
	return nil
}

// EnsureCapacity grows the buffer to hold at least n elements and returns
// the resulting capacity.
func (l *PooledList[T]) EnsureCapacity(n int) (int, error) { return l.core.ensure(n) }

// TrimBuffer shrinks the buffer to the size class that fits Len.
func (l *PooledList[T]) TrimBuffer() error { return l.core.trim() }

// ToSlice copies the elements into a new slice.
func (l *PooledList[T]) ToSlice() ([]T, error) {
	if err := l.core.alive(); err != nil {
		return nil, err
	}
	return l.core.snapshot(), nil
}

// CopyTo copies the elements into the prefix of dst.
func (l *PooledList[T]) CopyTo(dst []T) error { return l.core.copyTo(dst) }

// Span returns the elements in place. The slice aliases pooled storage and is
// invalidated by the next growing mutation or Dispose. Panics after Dispose.
func (l *PooledList[T]) Span() []T { return l.core.span() }

// All enumerates the elements in index order.
func (l *PooledList[T]) All() iter.Seq2[int, T] { return l.core.all() }

// IndexFunc returns the index of the first element matching fn, or -1.
func (l *PooledList[T]) IndexFunc(fn func(T) bool) int {
	return memops.IndexFunc(l.core.span(), fn)
}

// Dispose returns the buffer to the pool. Safe to call more than once.
func (l *PooledList[T]) Dispose() { l.core.dispose() }

// IndexOf returns the index of the first element equal to v, or -1.
func IndexOf[T comparable](s api.Sequence[T], v T) int {
	return memops.IndexOf(s.Span(), v)
}
