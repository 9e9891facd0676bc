// File: internal/memops/memops.go
// Package memops implements bulk element moves over contiguous storage.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// All moves are built on the runtime copy, which is memmove-correct for
// overlapping source and destination in either direction.

package memops

import "github.com/momentics/hioload-mem/api"

// Move copies count elements from src to dst. Regions may overlap, including
// shifts inside one backing array.
func Move[T any](dst, src []T, count int) {
	if count <= 0 {
		return
	}
	copy(dst[:count], src[:count])
}

// Copy copies all of src into the prefix of dst. The caller guarantees
// len(dst) >= len(src); a short destination panics on the bounds check.
func Copy[T any](dst, src []T) {
	copy(dst[:len(src)], src)
}

// CopyChecked is Copy for public boundaries.
func CopyChecked[T any](dst, src []T) error {
	if len(dst) < len(src) {
		return api.OutOfRange("destination", len(dst)).
			WithContext("required", len(src))
	}
	copy(dst, src)
	return nil
}

// Clear zeroes the first count elements of buf.
func Clear[T any](buf []T, count int) {
	if count <= 0 {
		return
	}
	clear(buf[:count])
}

// ClearIf zeroes buf[:count] only when scrub is set. Element types without
// references never need it.
func ClearIf[T any](scrub bool, buf []T, count int) {
	if !scrub {
		return
	}
	Clear(buf, count)
}
