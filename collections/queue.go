// File: collections/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package collections

import (
	"iter"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/memops"
)

// PooledQueue is a FIFO ring buffer over pooled storage. Growing compacts
// both ring segments into the front of the new buffer. Not safe for
// concurrent use; see ConcurrentQueue.
type PooledQueue[T any] struct {
	core listCore[T]
}

var _ api.Queue[int] = (*PooledQueue[int])(nil)

// NewPooledQueue returns an empty queue renting from p (shared pool when nil).
func NewPooledQueue[T any](p api.ArrayPool[T]) *PooledQueue[T] {
	q := &PooledQueue[T]{}
	q.core.init(p, "PooledQueue")
	return q
}

// NewPooledQueueWithCapacity rents room for capacity items up front.
func NewPooledQueueWithCapacity[T any](p api.ArrayPool[T], capacity int) (*PooledQueue[T], error) {
	q := NewPooledQueue(p)
	if _, err := q.core.ensure(capacity); err != nil {
		return nil, err
	}
	return q, nil
}

// Enqueue appends item at the tail.
func (q *PooledQueue[T]) Enqueue(item T) error {
	c := &q.core
	if err := c.alive(); err != nil {
		return err
	}
	if err := c.reserve(1); err != nil {
		return err
	}
	c.buf[c.slot(c.count)] = item
	c.count++
	return nil
}

// EnqueueRange appends items in order.
func (q *PooledQueue[T]) EnqueueRange(items []T) error {
	c := &q.core
	if err := c.alive(); err != nil {
		return err
	}
	n := len(items)
	if n == 0 {
		return nil
	}
	if err := c.checkExtra(n); err != nil {
		return err
	}
	if c.count > len(c.buf)-n {
		at := c.count
		if err := c.growTo(c.count+n, func(dst []T) {
			memops.Copy(dst[at:], items)
		}); err != nil {
			return err
		}
	} else {
		// Only free slots are written, first up to the end, then from the front.
		tail := c.slot(c.count)
		k := copy(c.buf[tail:], items)
		memops.Copy(c.buf, items[k:])
	}
	c.count += n
	return nil
}

// Dequeue removes and returns the head item.
func (q *PooledQueue[T]) Dequeue() (T, error) {
	var zero T
	c := &q.core
	if err := c.alive(); err != nil {
		return zero, err
	}
	if c.count == 0 {
		return zero, api.InvalidOperation("queue is empty")
	}
	item := c.buf[c.head]
	c.vacate(c.head, 1)
	c.head = c.slot(1)
	c.count--
	if c.count == 0 {
		c.head = 0
	}
	return item, nil
}

// TryDequeue is Dequeue reporting failure as false.
func (q *PooledQueue[T]) TryDequeue() (T, bool) {
	item, err := q.Dequeue()
	return item, err == nil
}

// Peek returns the head item without removing it.
func (q *PooledQueue[T]) Peek() (T, error) {
	var zero T
	if err := q.core.alive(); err != nil {
		return zero, err
	}
	if q.core.count == 0 {
		return zero, api.InvalidOperation("queue is empty")
	}
	return q.core.buf[q.core.head], nil
}

// TryPeek is Peek reporting failure as false.
func (q *PooledQueue[T]) TryPeek() (T, bool) {
	item, err := q.Peek()
	return item, err == nil
}

// At returns the item index positions behind the head.
func (q *PooledQueue[T]) At(index int) (T, error) { return q.core.at(index) }

// Len panics after Dispose.
func (q *PooledQueue[T]) Len() int {
	q.core.mustAlive()
	return q.core.count
}

// Cap panics after Dispose.
func (q *PooledQueue[T]) Cap() int {
	q.core.mustAlive()
	return q.core.capacity()
}

// Clear drops all items and keeps the buffer.
func (q *PooledQueue[T]) Clear() error {
	if err := q.core.alive(); err != nil {
		return err
	}
	q.core.reset()
	return nil
}

// EnsureCapacity grows the buffer to at least n items.
func (q *PooledQueue[T]) EnsureCapacity(n int) (int, error) { return q.core.ensure(n) }

// TrimBuffer shrinks the buffer to the size class that fits Len.
func (q *PooledQueue[T]) TrimBuffer() error { return q.core.trim() }

// ToSlice copies the items head first.
func (q *PooledQueue[T]) ToSlice() ([]T, error) {
	if err := q.core.alive(); err != nil {
		return nil, err
	}
	return q.core.snapshot(), nil
}

// CopyTo copies the items head first into the prefix of dst.
func (q *PooledQueue[T]) CopyTo(dst []T) error { return q.core.copyTo(dst) }

// All enumerates items head first.
func (q *PooledQueue[T]) All() iter.Seq2[int, T] { return q.core.all() }

// Dispose returns the buffer to the pool. Safe to call more than once.
func (q *PooledQueue[T]) Dispose() { q.core.dispose() }
