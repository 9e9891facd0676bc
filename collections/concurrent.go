// File: collections/concurrent.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-guarded wrappers for multi-writer use. Each instance has one mutex;
// every operation, count reads included, runs under it. Enumeration copies
// the elements under the lock and iterates the copy without it, so a
// range loop never observes a concurrent mutation or a disposed buffer.

package collections

import (
	"iter"
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// ConcurrentList is a PooledList safe for concurrent use.
type ConcurrentList[T any] struct {
	mu   sync.Mutex
	list *PooledList[T]
}

// NewConcurrentList returns an empty list renting from p (shared pool when nil).
func NewConcurrentList[T any](p api.ArrayPool[T]) *ConcurrentList[T] {
	return &ConcurrentList[T]{list: NewPooledList(p)}
}

func (c *ConcurrentList[T]) Add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Add(item)
}

func (c *ConcurrentList[T]) AddRange(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.AddRange(items)
}

func (c *ConcurrentList[T]) Insert(index int, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Insert(index, item)
}

func (c *ConcurrentList[T]) InsertRange(index int, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.InsertRange(index, items)
}

func (c *ConcurrentList[T]) RemoveAt(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.RemoveAt(index)
}

func (c *ConcurrentList[T]) RemoveRange(index, count int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.RemoveRange(index, count)
}

func (c *ConcurrentList[T]) At(index int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.At(index)
}

func (c *ConcurrentList[T]) Set(index int, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Set(index, item)
}

// Len panics after Dispose.
func (c *ConcurrentList[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Len()
}

func (c *ConcurrentList[T]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Clear()
}

func (c *ConcurrentList[T]) EnsureCapacity(n int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.EnsureCapacity(n)
}

func (c *ConcurrentList[T]) TrimBuffer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.TrimBuffer()
}

// Snapshot copies the current elements.
func (c *ConcurrentList[T]) Snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.ToSlice()
}

func (c *ConcurrentList[T]) CopyTo(dst []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.CopyTo(dst)
}

// IndexFunc returns the index of the first element matching fn, or -1.
// fn runs under the lock and must not call back into c.
func (c *ConcurrentList[T]) IndexFunc(fn func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.IndexFunc(fn)
}

// All enumerates a snapshot taken when iteration starts. Yields nothing
// after Dispose.
func (c *ConcurrentList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		items, err := c.Snapshot()
		if err != nil {
			return
		}
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (c *ConcurrentList[T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list.Dispose()
}

// ConcurrentStack is a PooledStack safe for concurrent use.
type ConcurrentStack[T any] struct {
	mu    sync.Mutex
	stack *PooledStack[T]
}

var _ api.Stack[int] = (*ConcurrentStack[int])(nil)

// NewConcurrentStack returns an empty stack renting from p (shared pool when nil).
func NewConcurrentStack[T any](p api.ArrayPool[T]) *ConcurrentStack[T] {
	return &ConcurrentStack[T]{stack: NewPooledStack(p)}
}

func (c *ConcurrentStack[T]) Push(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Push(item)
}

func (c *ConcurrentStack[T]) PushRange(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.PushRange(items)
}

func (c *ConcurrentStack[T]) Pop() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Pop()
}

func (c *ConcurrentStack[T]) TryPop() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.TryPop()
}

func (c *ConcurrentStack[T]) Peek() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Peek()
}

func (c *ConcurrentStack[T]) TryPeek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.TryPeek()
}

// Len panics after Dispose.
func (c *ConcurrentStack[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Len()
}

func (c *ConcurrentStack[T]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.Clear()
}

func (c *ConcurrentStack[T]) EnsureCapacity(n int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.EnsureCapacity(n)
}

func (c *ConcurrentStack[T]) TrimBuffer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.TrimBuffer()
}

// Snapshot copies the current items, top first.
func (c *ConcurrentStack[T]) Snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stack.ToSlice()
}

// All enumerates a snapshot, top first.
func (c *ConcurrentStack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		items, err := c.Snapshot()
		if err != nil {
			return
		}
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (c *ConcurrentStack[T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack.Dispose()
}

// ConcurrentQueue is a PooledQueue safe for concurrent use.
type ConcurrentQueue[T any] struct {
	mu    sync.Mutex
	queue *PooledQueue[T]
}

var _ api.Queue[int] = (*ConcurrentQueue[int])(nil)

// NewConcurrentQueue returns an empty queue renting from p (shared pool when nil).
func NewConcurrentQueue[T any](p api.ArrayPool[T]) *ConcurrentQueue[T] {
	return &ConcurrentQueue[T]{queue: NewPooledQueue(p)}
}

func (c *ConcurrentQueue[T]) Enqueue(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Enqueue(item)
}

func (c *ConcurrentQueue[T]) EnqueueRange(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.EnqueueRange(items)
}

func (c *ConcurrentQueue[T]) Dequeue() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Dequeue()
}

func (c *ConcurrentQueue[T]) TryDequeue() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.TryDequeue()
}

// DequeueBatch removes up to limit items in one critical section.
func (c *ConcurrentQueue[T]) DequeueBatch(limit int) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.queue.core.alive(); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, api.OutOfRange("limit", limit)
	}
	n := min(limit, c.queue.core.count)
	out := make([]T, 0, n)
	for range n {
		v, _ := c.queue.Dequeue()
		out = append(out, v)
	}
	return out, nil
}

func (c *ConcurrentQueue[T]) Peek() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Peek()
}

func (c *ConcurrentQueue[T]) TryPeek() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.TryPeek()
}

// Len panics after Dispose.
func (c *ConcurrentQueue[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Len()
}

func (c *ConcurrentQueue[T]) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.Clear()
}

func (c *ConcurrentQueue[T]) EnsureCapacity(n int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.EnsureCapacity(n)
}

func (c *ConcurrentQueue[T]) TrimBuffer() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.TrimBuffer()
}

// Snapshot copies the current items, head first.
func (c *ConcurrentQueue[T]) Snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queue.ToSlice()
}

// All enumerates a snapshot, head first.
func (c *ConcurrentQueue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		items, err := c.Snapshot()
		if err != nil {
			return
		}
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (c *ConcurrentQueue[T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue.Dispose()
}
