package collections_test

import (
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/collections"
	"github.com/momentics/hioload-mem/pool"
)

var poolSeq atomic.Int64

func newPool[T any](t testing.TB, opts ...pool.Option) *pool.ArrayPool[T] {
	t.Helper()
	name := fmt.Sprintf("collections-%s-%d", t.Name(), poolSeq.Add(1))
	all := append([]pool.Option{pool.WithName(name), pool.WithMetricsExport(false)}, opts...)
	p, err := pool.NewArrayPool[T](all...)
	require.NoError(t, err)
	return p
}

func TestPooledListAddAcrossGrowth(t *testing.T) {
	p := newPool[int](t)
	l := collections.NewPooledList[int](p)
	defer l.Dispose()
	assert.Zero(t, l.Len())

	const total = 100000
	lastCap := l.Cap()
	for i := 0; i < total; i++ {
		require.NoError(t, l.Add(i))
		if l.Cap() == lastCap && i != total-1 {
			continue
		}
		// The buffer just grew or this is the last add: every slot must
		// still hold what was added.
		lastCap = l.Cap()
		require.Equal(t, i+1, l.Len())
		for j, v := range l.Span() {
			if v != j {
				t.Fatalf("after %d adds slot %d holds %d", i+1, j, v)
			}
		}
	}
	assert.GreaterOrEqual(t, l.Cap(), total)
}

func TestPooledListLengthsAroundSizeClasses(t *testing.T) {
	p := newPool[int](t)
	for _, n := range []int{0, 1, 3, 4, 5, 15, 16, 17, 1023, 1024, 1025, 4097} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			l := collections.NewPooledList[int](p)
			defer l.Dispose()
			for i := 0; i < n; i++ {
				require.NoError(t, l.Add(i))
			}
			require.Equal(t, n, l.Len())
			for i, v := range l.Span() {
				require.Equal(t, i, v)
			}
		})
	}
}

func TestPooledListUnallocatableCapacity(t *testing.T) {
	p := newPool[int](t)
	l := collections.NewPooledList[int](p)
	defer l.Dispose()
	require.NoError(t, l.Add(1))

	for _, n := range []int{math.MaxInt / 2, math.MaxInt} {
		_, err := l.EnsureCapacity(n)
		assert.ErrorIs(t, err, api.ErrArgumentOutOfRange, "EnsureCapacity(%d)", n)
	}
	_, err := collections.NewPooledListWithCapacity[int](p, math.MaxInt/2)
	assert.ErrorIs(t, err, api.ErrArgumentOutOfRange)

	q := collections.NewPooledQueue[int](p)
	defer q.Dispose()
	_, err = q.EnsureCapacity(math.MaxInt / 2)
	assert.ErrorIs(t, err, api.ErrArgumentOutOfRange)

	w := collections.NewWriter[int](p)
	defer w.Dispose()
	_, err = w.GetSpan(math.MaxInt / 2)
	assert.ErrorIs(t, err, api.ErrArgumentOutOfRange)

	assert.Equal(t, 1, l.Len(), "failed growth leaves the list untouched")
	v, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestPooledListEmptyRentsNothing(t *testing.T) {
	p := newPool[int](t)
	l := collections.NewPooledList[int](p)
	assert.Zero(t, l.Cap())
	assert.Empty(t, l.Span())
	l.Dispose()
	assert.Zero(t, p.Stats().Rents)
}

func TestPooledListGrowReturnsOldBuffer(t *testing.T) {
	p := newPool[int](t)
	l := collections.NewPooledList[int](p)
	for i := 0; i < 17; i++ {
		require.NoError(t, l.Add(i))
	}
	// 16 slots first, then 32; the 16 went back.
	assert.Equal(t, 32, l.Cap())
	assert.Equal(t, map[int]int{16: 1}, p.Retained())
	l.Dispose()
	assert.Equal(t, map[int]int{16: 1, 32: 1}, p.Retained())
}

func TestPooledListInsertRemoveRoundTrip(t *testing.T) {
	p := newPool[int](t)
	base := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}
	for i := 0; i <= len(base); i++ {
		l := collections.NewPooledList[int](p)
		require.NoError(t, l.AddRange(base))
		require.NoError(t, l.Insert(i, -1))
		got, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, -1, got)
		assert.Equal(t, len(base)+1, l.Len())
		require.NoError(t, l.RemoveAt(i))
		assert.Equal(t, base, l.Span(), "index %d", i)
		l.Dispose()
	}
}

func TestPooledListRanges(t *testing.T) {
	l := collections.NewPooledList[string](newPool[string](t))
	defer l.Dispose()
	require.NoError(t, l.AddRange([]string{"a", "e"}))
	require.NoError(t, l.InsertRange(1, []string{"b", "c", "d"}))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, l.Span())

	require.NoError(t, l.RemoveRange(1, 3))
	assert.Equal(t, []string{"a", "e"}, l.Span())

	assert.ErrorIs(t, l.RemoveRange(1, 2), api.ErrArgumentOutOfRange)
	assert.ErrorIs(t, l.RemoveRange(-1, 0), api.ErrArgumentOutOfRange)
	assert.ErrorIs(t, l.InsertRange(3, []string{"x"}), api.ErrArgumentOutOfRange)
}

func TestPooledListAddRangeSelf(t *testing.T) {
	l := collections.NewPooledList[*int](newPool[*int](t))
	defer l.Dispose()
	a, b := new(int), new(int)
	*a, *b = 1, 2
	require.NoError(t, l.AddRange([]*int{a, b}))
	for l.Len() < 64 {
		require.NoError(t, l.AddRange(l.Span()))
	}
	for i, v := range l.All() {
		require.NotNil(t, v, "slot %d", i)
		assert.Equal(t, i%2+1, *v)
	}
}

func TestPooledListIndexErrors(t *testing.T) {
	l := collections.NewPooledList[int](newPool[int](t))
	defer l.Dispose()
	require.NoError(t, l.Add(1))

	_, err := l.At(1)
	assert.ErrorIs(t, err, api.ErrArgumentOutOfRange)
	assert.ErrorIs(t, l.Set(-1, 0), api.ErrArgumentOutOfRange)
	assert.ErrorIs(t, l.Insert(2, 0), api.ErrArgumentOutOfRange)
	assert.ErrorIs(t, l.RemoveAt(1), api.ErrArgumentOutOfRange)
	assert.Equal(t, []int{1}, l.Span(), "failed calls must not mutate")
}

func TestPooledListVacatedSlotsScrubbed(t *testing.T) {
	p := newPool[*int](t)
	l := collections.NewPooledList[*int](p)
	for i := 0; i < 4; i++ {
		require.NoError(t, l.Add(new(int)))
	}
	backing := l.Span()[:4:4]
	require.NoError(t, l.RemoveAt(0))
	assert.Nil(t, backing[3])
	require.NoError(t, l.RemoveRange(0, 2))
	assert.Nil(t, backing[1])
	assert.Nil(t, backing[2])

	l.Dispose()
	assert.Nil(t, backing[0], "dispose scrubs the live region")
}

func TestPooledListClearTrimEnsure(t *testing.T) {
	p := newPool[int](t)
	l := collections.NewPooledList[int](p)
	defer l.Dispose()

	capacity, err := l.EnsureCapacity(1000)
	require.NoError(t, err)
	assert.Equal(t, 1024, capacity)
	_, err = l.EnsureCapacity(-1)
	assert.ErrorIs(t, err, api.ErrArgumentOutOfRange)

	require.NoError(t, l.AddRange([]int{1, 2, 3, 4, 5}))
	require.NoError(t, l.TrimBuffer())
	assert.Equal(t, 16, l.Cap(), "trimmed to the pool's smallest class")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Span())

	require.NoError(t, l.Clear())
	assert.Zero(t, l.Len())
	assert.Equal(t, 16, l.Cap())
	require.NoError(t, l.TrimBuffer())
	assert.Zero(t, l.Cap())
}

func TestPooledListCopyOut(t *testing.T) {
	l := collections.NewPooledList[int](newPool[int](t))
	defer l.Dispose()
	require.NoError(t, l.AddRange([]int{3, 1, 4}))

	out, err := l.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4}, out)
	out[0] = 9
	v, _ := l.At(0)
	assert.Equal(t, 3, v, "ToSlice copies")

	dst := make([]int, 5)
	require.NoError(t, l.CopyTo(dst))
	assert.Equal(t, []int{3, 1, 4, 0, 0}, dst)
	assert.ErrorIs(t, l.CopyTo(make([]int, 2)), api.ErrArgumentOutOfRange)

	assert.Equal(t, 2, collections.IndexOf[int](l, 4))
	assert.Equal(t, -1, collections.IndexOf[int](l, 7))
	assert.Equal(t, 1, l.IndexFunc(func(v int) bool { return v < 2 }))
}

func TestPooledListDisposed(t *testing.T) {
	p := newPool[int](t)
	l := collections.NewPooledList[int](p)
	require.NoError(t, l.Add(1))
	l.Dispose()
	l.Dispose()

	assert.ErrorIs(t, l.Add(2), api.ErrObjectDisposed)
	assert.ErrorIs(t, l.AddRange([]int{1}), api.ErrObjectDisposed)
	assert.ErrorIs(t, l.Insert(0, 1), api.ErrObjectDisposed)
	assert.ErrorIs(t, l.RemoveAt(0), api.ErrObjectDisposed)
	assert.ErrorIs(t, l.Clear(), api.ErrObjectDisposed)
	assert.ErrorIs(t, l.TrimBuffer(), api.ErrObjectDisposed)
	_, err := l.At(0)
	assert.ErrorIs(t, err, api.ErrObjectDisposed)
	_, err = l.ToSlice()
	assert.ErrorIs(t, err, api.ErrObjectDisposed)
	_, err = l.EnsureCapacity(4)
	assert.ErrorIs(t, err, api.ErrObjectDisposed)

	for name, fn := range map[string]func(){
		"Len":  func() { l.Len() },
		"Cap":  func() { l.Cap() },
		"Span": func() { l.Span() },
	} {
		r := recoverErr(t, fn)
		assert.ErrorIs(t, r, api.ErrObjectDisposed, name)
	}
	for range l.All() {
		t.Fatal("disposed list yielded")
	}
	assert.EqualValues(t, 1, p.Stats().Returns, "buffer returned exactly once")
}

func TestPooledListSharedPoolFallback(t *testing.T) {
	t.Cleanup(pool.ResetShared)
	l := collections.NewPooledList[int16](nil)
	require.NoError(t, l.Add(1))
	l.Dispose()
	assert.EqualValues(t, 1, pool.Shared[int16]().Stats().Returns)
}

func recoverErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok)
	}()
	fn()
	return nil
}

func BenchmarkPooledListAdd(b *testing.B) {
	p := newPool[int](b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := collections.NewPooledList[int](p)
		for j := 0; j < 1024; j++ {
			_ = l.Add(j)
		}
		l.Dispose()
	}
}
