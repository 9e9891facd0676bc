// Package api
// Author: momentics
//
// Sequence contracts for pooled scratch buffers.
//
// Containers rent their storage from an ArrayPool and give it back on
// Dispose. Other subsystems (text builders, parsers) consume them through
// the interfaces below.

package api

import "iter"

// Disposable releases pooled storage. After Dispose the object must not be used.
type Disposable interface {
	Dispose()
}

// Sequence is indexed, contiguous, enumerable storage.
type Sequence[T any] interface {
	Disposable

	// Len returns the number of live elements.
	Len() int

	// At returns the element at index i.
	At(i int) (T, error)

	// Span returns the live elements as a slice aliasing the pooled
	// storage. It is invalidated by the next growing mutation.
	Span() []T

	// All enumerates live elements in index order.
	All() iter.Seq2[int, T]
}

// Stack is a LIFO contract.
type Stack[T any] interface {
	Disposable
	Push(item T) error
	Pop() (T, error)
	TryPop() (T, bool)
	Len() int
}

// Queue is a FIFO contract.
type Queue[T any] interface {
	Disposable
	Enqueue(item T) error
	Dequeue() (T, error)
	TryDequeue() (T, bool)
	Len() int
}
