// File: pool/checker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Optional double-return detection. Arrays are keyed by the address of their
// backing storage; the checker never holds the arrays themselves.

package pool

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/momentics/hioload-mem/api"
)

// returnChecker remembers the arrays a pool currently retains. Only idle
// arrays are tracked, so the set never outgrows the buckets; arrays that are
// rented and then abandoned leave nothing behind.
type returnChecker struct {
	mu   sync.Mutex
	idle map[uintptr]struct{}
}

func newReturnChecker() *returnChecker {
	return &returnChecker{idle: make(map[uintptr]struct{})}
}

func keyOf[T any](arr []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(arr)))
}

// rented drops k from the idle set when a bucket hands it out.
func (c *returnChecker) rented(k uintptr) {
	c.forget(k)
}

// returning marks k idle. It returns an error when k is already idle.
func (c *returnChecker) returning(k uintptr) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.idle[k]; ok {
		return api.InvalidOperation(fmt.Sprintf("array %#x returned twice", k))
	}
	c.idle[k] = struct{}{}
	return nil
}

// forget drops k once the pool no longer retains the array.
func (c *returnChecker) forget(k uintptr) {
	c.mu.Lock()
	delete(c.idle, k)
	c.mu.Unlock()
}

func (c *returnChecker) tracked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.idle)
}
