// File: pool/bucket.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One size class of an ArrayPool: a bounded LIFO stack of equal-length arrays.

package pool

import (
	"sync"

	"golang.org/x/sys/cpu"
)

type bucket[T any] struct {
	_      cpu.CacheLinePad
	mu     sync.Mutex
	length int   // every array held has exactly this length
	arrays [][]T // stack storage, cap == depth
	_      cpu.CacheLinePad
}

func (b *bucket[T]) init(length, depth int) {
	b.length = length
	b.arrays = make([][]T, 0, depth)
}

// pop returns the most recently pushed array, or nil.
func (b *bucket[T]) pop() []T {
	b.mu.Lock()
	n := len(b.arrays)
	if n == 0 {
		b.mu.Unlock()
		return nil
	}
	arr := b.arrays[n-1]
	b.arrays[n-1] = nil
	b.arrays = b.arrays[:n-1]
	b.mu.Unlock()
	return arr
}

// push stores arr unless the bucket is full.
func (b *bucket[T]) push(arr []T) bool {
	b.mu.Lock()
	if len(b.arrays) == cap(b.arrays) {
		b.mu.Unlock()
		return false
	}
	b.arrays = append(b.arrays, arr)
	b.mu.Unlock()
	return true
}

// drain empties the bucket and hands back what it held.
func (b *bucket[T]) drain() [][]T {
	b.mu.Lock()
	out := make([][]T, len(b.arrays))
	copy(out, b.arrays)
	clear(b.arrays)
	b.arrays = b.arrays[:0]
	b.mu.Unlock()
	return out
}

func (b *bucket[T]) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.arrays)
}
