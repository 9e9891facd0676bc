// File: internal/memops/scan.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linear scans over contiguous numeric storage.

package memops

import "golang.org/x/exp/constraints"

// Number is any integer or floating point element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// FillAscending writes start, start+1, ... into dst.
func FillAscending[T Number](dst []T, start T) {
	v := start
	for i := range dst {
		dst[i] = v
		v++
	}
}

// Sum adds all elements of s. Integer overflow wraps.
func Sum[T Number](s []T) T {
	var total T
	var a, b, c, d T // unrolled by four
	i := 0
	for ; i+4 <= len(s); i += 4 {
		a += s[i]
		b += s[i+1]
		c += s[i+2]
		d += s[i+3]
	}
	for ; i < len(s); i++ {
		total += s[i]
	}
	return total + a + b + c + d
}

// IndexOf returns the first index of v in s, or -1.
func IndexOf[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// IndexFunc returns the first index satisfying match, or -1.
func IndexFunc[T any](s []T, match func(T) bool) int {
	for i := range s {
		if match(s[i]) {
			return i
		}
	}
	return -1
}
