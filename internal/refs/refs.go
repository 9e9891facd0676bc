// File: internal/refs/refs.go
// Package refs answers whether an element type can hold references.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pools and growable buffers capture the answer once at construction time
// and use it to decide whether vacated slots must be zeroed.

package refs

import (
	"reflect"
	"sync"
)

var cache sync.Map // reflect.Type -> bool

// ContainsReferences reports whether values of T may keep other objects
// reachable: pointers, strings, slices, maps, channels, funcs, interfaces,
// or any array/struct containing one of those.
func ContainsReferences[T any]() bool {
	return TypeContainsReferences(reflect.TypeFor[T]())
}

// TypeContainsReferences is ContainsReferences for a runtime type.
func TypeContainsReferences(t reflect.Type) bool {
	if t == nil {
		return true
	}
	if v, ok := cache.Load(t); ok {
		return v.(bool)
	}
	has := walk(t)
	cache.Store(t, has)
	return has
}

func walk(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && walk(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if walk(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointer, UnsafePointer, String, Slice, Map, Chan, Func, Interface
		return true
	}
}
