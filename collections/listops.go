// File: collections/listops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Index-based list operations shared by ValueList and PooledList.
// List-shaped containers keep head at zero, so logical and physical
// indices coincide.

package collections

import (
	"iter"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/memops"
)

func (c *listCore[T]) add(item T) error {
	if err := c.alive(); err != nil {
		return err
	}
	if c.count == len(c.buf) {
		if err := c.growTo(c.count+1, nil); err != nil {
			return err
		}
	}
	c.buf[c.count] = item
	c.count++
	return nil
}

// addRange appends items. items may alias the container's own storage.
func (c *listCore[T]) addRange(items []T) error {
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
		memops.Copy(c.buf[c.count:], items)
	}
	c.count += n
	return nil
}

func (c *listCore[T]) insert(index int, item T) error {
	if err := c.alive(); err != nil {
		return err
	}
	if index < 0 || index > c.count {
		return api.OutOfRange("index", index).WithContext("count", c.count)
	}
	if c.count == len(c.buf) {
		if err := c.growTo(c.count+1, nil); err != nil {
			return err
		}
	}
	memops.Move(c.buf[index+1:], c.buf[index:], c.count-index)
	c.buf[index] = item
	c.count++
	return nil
}

// insertRange inserts items at index. Unless the call grows the buffer,
// items must not alias the container's own storage.
func (c *listCore[T]) insertRange(index int, items []T) error {
	if err := c.alive(); err != nil {
		return err
	}
	if index < 0 || index > c.count {
		return api.OutOfRange("index", index).WithContext("count", c.count)
	}
	n := len(items)
	if n == 0 {
		return nil
	}
	if err := c.checkExtra(n); err != nil {
		return err
	}
	if c.count > len(c.buf)-n {
		tail := c.count - index
		if err := c.growTo(c.count+n, func(dst []T) {
			memops.Move(dst[index+n:], dst[index:], tail)
			memops.Copy(dst[index:], items)
		}); err != nil {
			return err
		}
	} else {
		memops.Move(c.buf[index+n:], c.buf[index:], c.count-index)
		memops.Copy(c.buf[index:], items)
	}
	c.count += n
	return nil
}

func (c *listCore[T]) removeAt(index int) error {
	if err := c.alive(); err != nil {
		return err
	}
	if index < 0 || index >= c.count {
		return api.OutOfRange("index", index).WithContext("count", c.count)
	}
	memops.Move(c.buf[index:], c.buf[index+1:], c.count-index-1)
	c.count--
	c.vacate(c.count, 1)
	return nil
}

func (c *listCore[T]) removeRange(index, n int) error {
	if err := c.alive(); err != nil {
		return err
	}
	if index < 0 || index > c.count {
		return api.OutOfRange("index", index).WithContext("count", c.count)
	}
	if n < 0 || n > c.count-index {
		return api.OutOfRange("count", n).WithContext("index", index)
	}
	if n == 0 {
		return nil
	}
	memops.Move(c.buf[index:], c.buf[index+n:], c.count-index-n)
	c.count -= n
	c.vacate(c.count, n)
	return nil
}

func (c *listCore[T]) at(index int) (T, error) {
	var zero T
	if err := c.alive(); err != nil {
		return zero, err
	}
	if index < 0 || index >= c.count {
		return zero, api.OutOfRange("index", index).WithContext("count", c.count)
	}
	return c.buf[c.slot(index)], nil
}

func (c *listCore[T]) set(index int, item T) error {
	if err := c.alive(); err != nil {
		return err
	}
	if index < 0 || index >= c.count {
		return api.OutOfRange("index", index).WithContext("count", c.count)
	}
	c.buf[c.slot(index)] = item
	return nil
}

func (c *listCore[T]) copyTo(dst []T) error {
	if err := c.alive(); err != nil {
		return err
	}
	if len(dst) < c.count {
		return api.OutOfRange("destination", len(dst)).WithContext("required", c.count)
	}
	c.compact(dst)
	return nil
}

// span returns the live prefix with capacity clipped so appends reallocate.
func (c *listCore[T]) span() []T {
	c.mustAlive()
	return c.buf[:c.count:c.count]
}

// all yields the live window in logical order, stopping early on disposal.
func (c *listCore[T]) all() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < c.count && !c.disposed; i++ {
			if !yield(i, c.buf[c.slot(i)]) {
				return
			}
		}
	}
}

func (c *listCore[T]) checkExtra(n int) error {
	if n > c.limit-c.count {
		return api.OutOfRange("count", n).WithContext("current", c.count)
	}
	return nil
}
