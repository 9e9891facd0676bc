// File: collections/stack.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package collections

import (
	"iter"
	"slices"

	"github.com/momentics/hioload-mem/api"
)

// PooledStack is a LIFO stack over pooled storage. Not safe for concurrent
// use; see ConcurrentStack.
type PooledStack[T any] struct {
	core listCore[T]
}

var _ api.Stack[int] = (*PooledStack[int])(nil)

// NewPooledStack returns an empty stack renting from p (shared pool when nil).
func NewPooledStack[T any](p api.ArrayPool[T]) *PooledStack[T] {
	s := &PooledStack[T]{}
	s.core.init(p, "PooledStack")
	return s
}

// Push puts item on top.
func (s *PooledStack[T]) Push(item T) error { return s.core.add(item) }

// PushRange pushes items in order, so the last one ends on top.
func (s *PooledStack[T]) PushRange(items []T) error { return s.core.addRange(items) }

// Pop removes and returns the top item.
func (s *PooledStack[T]) Pop() (T, error) {
	var zero T
	if err := s.core.alive(); err != nil {
		return zero, err
	}
	if s.core.count == 0 {
		return zero, api.InvalidOperation("stack is empty")
	}
	s.core.count--
	item := s.core.buf[s.core.count]
	s.core.vacate(s.core.count, 1)
	return item, nil
}

// TryPop is Pop reporting failure as false.
func (s *PooledStack[T]) TryPop() (T, bool) {
	item, err := s.Pop()
	return item, err == nil
}

// Peek returns the top item without removing it.
func (s *PooledStack[T]) Peek() (T, error) {
	var zero T
	if err := s.core.alive(); err != nil {
		return zero, err
	}
	if s.core.count == 0 {
		return zero, api.InvalidOperation("stack is empty")
	}
	return s.core.buf[s.core.count-1], nil
}

// TryPeek is Peek reporting failure as false.
func (s *PooledStack[T]) TryPeek() (T, bool) {
	item, err := s.Peek()
	return item, err == nil
}

// Len panics after Dispose.
func (s *PooledStack[T]) Len() int {
	s.core.mustAlive()
	return s.core.count
}

// Cap panics after Dispose.
func (s *PooledStack[T]) Cap() int {
	s.core.mustAlive()
	return s.core.capacity()
}

// Clear drops all items and keeps the buffer.
func (s *PooledStack[T]) Clear() error {
	if err := s.core.alive(); err != nil {
		return err
	}
	s.core.reset()
	return nil
}

// EnsureCapacity grows the buffer to at least n items.
func (s *PooledStack[T]) EnsureCapacity(n int) (int, error) { return s.core.ensure(n) }

// TrimBuffer shrinks the buffer to the size class that fits Len.
func (s *PooledStack[T]) TrimBuffer() error { return s.core.trim() }

// ToSlice copies the items top first.
func (s *PooledStack[T]) ToSlice() ([]T, error) {
	if err := s.core.alive(); err != nil {
		return nil, err
	}
	out := s.core.snapshot()
	slices.Reverse(out)
	return out, nil
}

// All enumerates items top first; index 0 is the top.
func (s *PooledStack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.core.count && !s.core.disposed; i++ {
			if !yield(i, s.core.buf[s.core.count-1-i]) {
				return
			}
		}
	}
}

// Dispose returns the buffer to the pool. Safe to call more than once.
func (s *PooledStack[T]) Dispose() { s.core.dispose() }
