// File: collections/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Writer is an append-only sink over pooled storage. Producers either copy
// through Write or fill GetSpan in place and commit with Advance.
// A Writer[byte] satisfies io.Writer.

package collections

import "github.com/momentics/hioload-mem/api"

// Writer accumulates written elements in a pooled buffer. Not safe for
// concurrent use.
type Writer[T any] struct {
	core listCore[T]
}

// NewWriter returns an empty writer renting from p (shared pool when nil).
func NewWriter[T any](p api.ArrayPool[T]) *Writer[T] {
	w := &Writer[T]{}
	w.core.init(p, "Writer")
	return w
}

// NewWriterWithCapacity rents room for capacity elements up front.
func NewWriterWithCapacity[T any](p api.ArrayPool[T], capacity int) (*Writer[T], error) {
	w := NewWriter(p)
	if _, err := w.core.ensure(capacity); err != nil {
		return nil, err
	}
	return w, nil
}

// GetSpan returns writable free space of at least sizeHint elements
// (at least one when sizeHint is zero). Nothing counts as written until
// Advance. The span is invalidated by any other call on the writer.
func (w *Writer[T]) GetSpan(sizeHint int) ([]T, error) {
	c := &w.core
	if err := c.alive(); err != nil {
		return nil, err
	}
	if sizeHint < 0 {
		return nil, api.OutOfRange("sizeHint", sizeHint)
	}
	if err := c.reserve(max(sizeHint, 1)); err != nil {
		return nil, err
	}
	c.expose(len(c.buf))
	return c.buf[c.count:], nil
}

// Advance commits n elements written into the last span.
func (w *Writer[T]) Advance(n int) error {
	c := &w.core
	if err := c.alive(); err != nil {
		return err
	}
	if n < 0 || n > len(c.buf)-c.count {
		return api.OutOfRange("count", n).WithContext("free", len(c.buf)-c.count)
	}
	c.count += n
	return nil
}

// Write appends p.
func (w *Writer[T]) Write(p []T) (int, error) {
	if err := w.core.addRange(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteItem appends a single element.
func (w *Writer[T]) WriteItem(item T) error { return w.core.add(item) }

// WrittenSpan returns the written elements in place. Panics after Dispose.
func (w *Writer[T]) WrittenSpan() []T { return w.core.span() }

// WrittenCount panics after Dispose.
func (w *Writer[T]) WrittenCount() int {
	w.core.mustAlive()
	return w.core.count
}

// Capacity panics after Dispose.
func (w *Writer[T]) Capacity() int {
	w.core.mustAlive()
	return w.core.capacity()
}

// FreeCapacity panics after Dispose.
func (w *Writer[T]) FreeCapacity() int {
	w.core.mustAlive()
	return w.core.capacity() - w.core.count
}

// Clear forgets written data and keeps the buffer.
func (w *Writer[T]) Clear() error {
	if err := w.core.alive(); err != nil {
		return err
	}
	w.core.reset()
	return nil
}

// ToSlice copies the written elements.
func (w *Writer[T]) ToSlice() ([]T, error) {
	if err := w.core.alive(); err != nil {
		return nil, err
	}
	return w.core.snapshot(), nil
}

// Dispose returns the buffer to the pool. Safe to call more than once.
func (w *Writer[T]) Dispose() { w.core.dispose() }
