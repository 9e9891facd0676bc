// File: pool/rented.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Rented pairs an array with the pool it came from and guarantees the array
// goes back exactly once.

package pool

import "github.com/momentics/hioload-mem/api"

// Rented is a disposable handle over a pooled array. Not safe for concurrent use.
type Rented[T any] struct {
	pool  api.ArrayPool[T]
	array []T
}

// RentHandle rents minimumLength elements from p and wraps them.
// Typical use:
//
//	r, err := pool.RentHandle(p, n)
//	if err != nil { ... }
//	defer r.Release()
func RentHandle[T any](p api.ArrayPool[T], minimumLength int) (*Rented[T], error) {
	arr, err := p.Rent(minimumLength)
	if err != nil {
		return nil, err
	}
	return &Rented[T]{pool: p, array: arr}, nil
}

// Array returns the rented array, or nil after Release.
func (r *Rented[T]) Array() []T { return r.array }

// Len returns the rented length, zero after Release.
func (r *Rented[T]) Len() int { return len(r.array) }

// Released reports whether the array went back to its pool.
func (r *Rented[T]) Released() bool { return r.array == nil }

// Release returns the array with the pool's default scrub policy.
// Later calls are no-ops.
func (r *Rented[T]) Release() {
	r.ReleaseWith(api.ReturnDefault)
}

// ReleaseWith returns the array with an explicit scrub option.
func (r *Rented[T]) ReleaseWith(option api.ReturnOption) {
	if r.array == nil {
		return
	}
	arr := r.array
	r.array = nil
	r.pool.ReturnWith(arr, option)
}

// Dispose is Release; it lets Rented satisfy api.Disposable.
func (r *Rented[T]) Dispose() { r.Release() }

var _ api.Disposable = (*Rented[int])(nil)
