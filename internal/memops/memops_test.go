package memops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/memops"
)

// naiveMove copies element by element, walking backwards when the destination
// starts after the source so that overlapping input is not clobbered.
func naiveMove(buf []int, dstOff, srcOff, count int) {
	if dstOff > srcOff {
		for i := count - 1; i >= 0; i-- {
			buf[dstOff+i] = buf[srcOff+i]
		}
		return
	}
	for i := 0; i < count; i++ {
		buf[dstOff+i] = buf[srcOff+i]
	}
}

func checkOverlap(t *testing.T, length, dstOff, srcOff int) {
	t.Helper()
	size := length + max(dstOff, srcOff)
	want := make([]int, size)
	memops.FillAscending(want, 1)
	got := append([]int(nil), want...)

	naiveMove(want, dstOff, srcOff, length)
	memops.Move(got[dstOff:], got[srcOff:], length)

	if !assert.Equal(t, want, got) {
		t.Fatalf("length=%d dst=%d src=%d", length, dstOff, srcOff)
	}
}

func TestMove_OverlappingSmall(t *testing.T) {
	for length := 0; length <= 2048; length++ {
		shift := 1 + length%7
		checkOverlap(t, length, shift, 0) // forward overlap
		checkOverlap(t, length, 0, shift) // backward overlap
	}
}

func TestMove_OverlappingRandomLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 12; i++ {
		length := 2049 + rng.Intn(1<<20-2049)
		shift := 1 + rng.Intn(length)
		if i%2 == 0 {
			checkOverlap(t, length, shift, 0)
		} else {
			checkOverlap(t, length, 0, shift)
		}
	}
}

func TestMove_Disjoint(t *testing.T) {
	src := []string{"a", "b", "c"}
	dst := make([]string, 5)
	memops.Move(dst, src, 2)
	assert.Equal(t, []string{"a", "b", "", "", ""}, dst)

	memops.Move(dst, src, 0)
	memops.Move(dst, src, -1)
	assert.Equal(t, []string{"a", "b", "", "", ""}, dst)
}

func TestCopy(t *testing.T) {
	dst := make([]int, 4)
	memops.Copy(dst, []int{7, 8})
	assert.Equal(t, []int{7, 8, 0, 0}, dst)

	assert.Panics(t, func() { memops.Copy(make([]int, 1), []int{1, 2}) })
}

func TestCopyChecked(t *testing.T) {
	dst := make([]int, 3)
	require.NoError(t, memops.CopyChecked(dst, []int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, dst)

	err := memops.CopyChecked(make([]int, 2), []int{1, 2, 3})
	assert.ErrorIs(t, err, api.ErrArgumentOutOfRange)
}

func TestClear(t *testing.T) {
	buf := []*int{new(int), new(int), new(int)}
	memops.Clear(buf, 2)
	assert.Nil(t, buf[0])
	assert.Nil(t, buf[1])
	assert.NotNil(t, buf[2])

	vals := []int{1, 2, 3}
	memops.ClearIf(false, vals, 3)
	assert.Equal(t, []int{1, 2, 3}, vals)
	memops.ClearIf(true, vals, 3)
	assert.Equal(t, []int{0, 0, 0}, vals)
}

func TestScans(t *testing.T) {
	s := make([]int64, 1001)
	memops.FillAscending(s, 0)
	assert.Equal(t, int64(500500), memops.Sum(s))
	assert.Equal(t, 17, memops.IndexOf(s, 17))
	assert.Equal(t, -1, memops.IndexOf(s, -5))
	assert.Equal(t, 3, memops.IndexFunc(s, func(v int64) bool { return v > 2 }))

	f := []float64{0.5, 0.25, 0.25}
	assert.InDelta(t, 1.0, memops.Sum(f), 1e-12)
	assert.Zero(t, memops.Sum([]uint8(nil)))
}

func BenchmarkMoveShift(b *testing.B) {
	buf := make([]int, 1<<16+1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memops.Move(buf[1:], buf, 1<<16)
	}
}
