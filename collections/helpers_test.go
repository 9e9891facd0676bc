package collections_test

import (
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/pool"
)

// auditPool counts returned arrays that still hold non-zero elements.
type auditPool[T comparable] struct {
	*pool.ArrayPool[T]
	returned int
	dirty    int
}

func newAuditPool[T comparable](t testing.TB) *auditPool[T] {
	return &auditPool[T]{ArrayPool: newPool[T](t)}
}

func (a *auditPool[T]) ReturnWith(arr []T, option api.ReturnOption) {
	a.returned++
	var zero T
	for _, v := range arr {
		if v != zero {
			a.dirty++
			break
		}
	}
	a.ArrayPool.ReturnWith(arr, option)
}

func (a *auditPool[T]) Return(arr []T) { a.ReturnWith(arr, api.ReturnDefault) }
