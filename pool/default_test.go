package pool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/pool"
)

func TestSharedIsPerType(t *testing.T) {
	t.Cleanup(pool.ResetShared)

	a := pool.Shared[int32]()
	b := pool.Shared[int32]()
	assert.Same(t, a, b)
	assert.Equal(t, "int32", a.Name())

	s := pool.Shared[string]()
	assert.Equal(t, "string", s.Name())
	assert.True(t, s.ScrubsByDefault())
}

func TestSharedConcurrentFirstUse(t *testing.T) {
	t.Cleanup(pool.ResetShared)

	var wg sync.WaitGroup
	got := make([]*pool.ArrayPool[uint16], 32)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = pool.Shared[uint16]()
		}(i)
	}
	wg.Wait()
	for _, p := range got[1:] {
		assert.Same(t, got[0], p)
	}
}

func TestSetDefaultOptions(t *testing.T) {
	t.Cleanup(pool.ResetShared)

	err := pool.SetDefaultOptions(pool.WithMinimumLength(3))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	require.NoError(t, pool.SetDefaultOptions(pool.WithMinimumLength(64), pool.WithMaxArraysPerBucket(4)))
	p := pool.Shared[uint64]()
	assert.Equal(t, 64, p.MinimumLength())
	assert.Equal(t, 4, p.MaxArraysPerBucket())

	pool.ResetShared()
	assert.Equal(t, pool.DefaultMinimumLength, pool.Shared[uint64]().MinimumLength())
}

func TestSharedStatsAndClear(t *testing.T) {
	t.Cleanup(pool.ResetShared)
	pool.ResetShared()

	bp := pool.Shared[byte]()
	arr, err := bp.Rent(100)
	require.NoError(t, err)
	bp.Return(arr)
	fp := pool.Shared[float32]()
	farr, err := fp.Rent(10)
	require.NoError(t, err)
	fp.Return(farr)

	snaps := pool.SharedStats()
	require.Len(t, snaps, 2)
	assert.Equal(t, "float32", snaps[0].Name)
	assert.Equal(t, "uint8", snaps[1].Name)
	assert.Equal(t, map[int]int{128: 1}, snaps[1].Retained)

	pool.ClearShared()
	for _, s := range pool.SharedStats() {
		assert.Empty(t, s.Retained)
	}
}
