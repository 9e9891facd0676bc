package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/collections"
	"github.com/momentics/hioload-mem/pool"
)

func TestValueListScratchThenPool(t *testing.T) {
	p := newPool[int](t)
	var scratch [8]int
	l := collections.NewValueListFrom[int](p, scratch[:])
	defer l.Dispose()

	for i := 0; i < 8; i++ {
		require.NoError(t, l.Add(i))
	}
	assert.Equal(t, 8, l.Cap())
	assert.Equal(t, [8]int{0, 1, 2, 3, 4, 5, 6, 7}, scratch)
	assert.Zero(t, p.Stats().Rents)

	require.NoError(t, l.Add(8))
	assert.Equal(t, 16, l.Cap())
	assert.EqualValues(t, 1, p.Stats().Rents)

	l.Dispose()
	assert.EqualValues(t, 1, p.Stats().Returns, "scratch never goes to the pool")
}

func TestValueListZeroValue(t *testing.T) {
	t.Cleanup(pool.ResetShared)
	var l collections.ValueList[uint32]
	require.NoError(t, l.AddRange([]uint32{5, 6, 7}))
	require.NoError(t, l.Insert(0, 4))
	require.NoError(t, l.Set(3, 70))
	got, err := l.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []uint32{4, 5, 6, 70}, got)
	assert.Equal(t, 2, l.IndexFunc(func(v uint32) bool { return v > 5 }))
	assert.Equal(t, -1, l.IndexFunc(func(v uint32) bool { return v == 0 }))
	l.Dispose()

	assert.ErrorIs(t, l.Add(1), api.ErrObjectDisposed)
	assert.Panics(t, func() { l.Len() })
}

func TestValueListInsertRemoveRoundTrip(t *testing.T) {
	l := collections.NewValueList[int](newPool[int](t))
	defer l.Dispose()
	for i := 0; i < 40; i++ {
		require.NoError(t, l.Add(i*i))
	}
	want, _ := l.ToSlice()
	for i := 0; i <= 40; i++ {
		require.NoError(t, l.Insert(i, -7))
		require.NoError(t, l.RemoveAt(i))
		require.Equal(t, want, l.Span())
	}
}

func TestValueListEscape(t *testing.T) {
	p := newPool[string](t)
	var scratch [4]string
	l := collections.NewValueListFrom[string](p, scratch[:])
	require.NoError(t, l.AddRange([]string{"x", "y"}))

	out, err := l.Escape()
	require.NoError(t, err)
	defer out.Dispose()
	assert.Equal(t, []string{"x", "y"}, out.Span())
	assert.Equal(t, [4]string{}, scratch, "scratch scrubbed after copy")
	assert.ErrorIs(t, l.Add("z"), api.ErrObjectDisposed)

	pooled := collections.NewValueList[string](p)
	for i := 0; i < 20; i++ {
		require.NoError(t, pooled.Add("v"))
	}
	backing := &pooled.Span()[0]
	moved, err := pooled.Escape()
	require.NoError(t, err)
	assert.Same(t, backing, &moved.Span()[0], "pooled storage moves without copying")
	assert.Equal(t, 20, moved.Len())
	moved.Dispose()
	pooled.Dispose()
	// The 16-slot buffer outgrown by pooled, then the moved 32-slot one.
	assert.EqualValues(t, 2, p.Stats().Returns)
}
