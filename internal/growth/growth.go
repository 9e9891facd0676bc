// File: internal/growth/growth.go
// Package growth computes capacities for growable pooled buffers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package growth

import (
	"math"
	"math/bits"
	"unsafe"

	"github.com/momentics/hioload-mem/api"
)

const (
	// DefaultInitialCapacity is the first capacity handed out to an empty buffer.
	DefaultInitialCapacity = 4

	// MaxCapacity is the largest capacity Next ever reports.
	MaxCapacity = math.MaxInt

	// maxAllocBytes bounds one backing array: 2^47 bytes on 64-bit
	// platforms, 2^31 on 32-bit ones. make panics well before MaxCapacity
	// for any element wider than a byte.
	maxAllocBytes = uint64(1) << (min(bits.UintSize, 48) - 1)
)

// MaxLength is the largest slice length of T that can be allocated.
func MaxLength[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return MaxCapacity
	}
	return int(min(maxAllocBytes/size, uint64(MaxCapacity)))
}

// Next maps the current capacity and the additional demand to the next
// capacity. The result is at least current+neededExtra, prefers doubling,
// and saturates at MaxCapacity instead of overflowing.
func Next(current, neededExtra int) (int, error) {
	return NextWithin(current, neededExtra, MaxCapacity)
}

// NextWithin is Next saturating at limit, typically MaxLength of the
// element type. Demand beyond limit is an out-of-range error.
func NextWithin(current, neededExtra, limit int) (int, error) {
	if current < 0 {
		return 0, api.OutOfRange("current", current)
	}
	if neededExtra < 0 {
		return 0, api.OutOfRange("neededExtra", neededExtra)
	}
	if neededExtra == 0 {
		return current, nil
	}
	if current > limit-neededExtra {
		return 0, api.OutOfRange("neededExtra", neededExtra).
			WithContext("current", current).
			WithContext("limit", limit)
	}
	required := current + neededExtra

	next := limit
	if current <= limit/2 {
		next = current * 2
	}
	return min(max(next, required, DefaultInitialCapacity), limit), nil
}

// SizeClass returns the smallest power of two that is >= max(n, floor).
// floor must itself be a power of two. Values above the largest int power
// of two are returned unchanged.
func SizeClass(n, floor int) int {
	if n <= floor {
		return floor
	}
	shift := bits.Len(uint(n - 1))
	if shift >= bits.UintSize-1 {
		return n
	}
	return 1 << shift
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns floor(log2(n)) for positive n.
func Log2(n int) int {
	return bits.Len(uint(n)) - 1
}

// Trimmed returns the capacity TrimBuffer shrinks to: the smallest power of
// two holding count elements, never below floor.
func Trimmed(count, floor int) int {
	if count < 0 {
		count = 0
	}
	return SizeClass(count, floor)
}
