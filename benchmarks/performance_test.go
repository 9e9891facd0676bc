// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-mem components.

package benchmarks

import (
	"fmt"
	"testing"

	"github.com/momentics/hioload-mem/collections"
	"github.com/momentics/hioload-mem/control"
	"github.com/momentics/hioload-mem/facade"
	"github.com/momentics/hioload-mem/internal/logutil"
	"github.com/momentics/hioload-mem/internal/memops"
	"github.com/momentics/hioload-mem/pool"
)

func newBenchPool[T any](b *testing.B) *pool.ArrayPool[T] {
	b.Helper()
	p, err := pool.NewArrayPool[T](pool.WithName(b.Name()), pool.WithMetricsExport(false))
	if err != nil {
		b.Fatal(err)
	}
	return p
}

// BenchmarkArrayPoolRentReturn measures the bucket fast path under contention.
func BenchmarkArrayPoolRentReturn(b *testing.B) {
	for _, size := range []int{16, 4096, 1 << 20} {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			p := newBenchPool[byte](b)
			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					buf, err := p.Rent(size)
					if err != nil {
						b.Error(err)
						return
					}
					p.Return(buf)
				}
			})
		})
	}
}

// BenchmarkMakeBaseline allocates without pooling for comparison.
func BenchmarkMakeBaseline(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		var sink []byte
		for pb.Next() {
			sink = make([]byte, 4096)
		}
		_ = sink
	})
}

// BenchmarkValueListAdd fills a stack-scoped list backed by caller scratch.
func BenchmarkValueListAdd(b *testing.B) {
	p := newBenchPool[int](b)
	var scratch [256]int
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := collections.NewValueListFrom[int](p, scratch[:])
		for j := range 1024 {
			if err := l.Add(j); err != nil {
				b.Fatal(err)
			}
		}
		l.Dispose()
	}
}

// BenchmarkPooledQueueThroughput runs a steady producer/consumer pattern.
func BenchmarkPooledQueueThroughput(b *testing.B) {
	q := collections.NewPooledQueue[int](newBenchPool[int](b))
	defer q.Dispose()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(i)
		if q.Len() > 512 {
			q.Dequeue()
		}
	}
}

// BenchmarkConcurrentQueueContention tests the locked wrapper under load.
func BenchmarkConcurrentQueueContention(b *testing.B) {
	q := collections.NewConcurrentQueue[int](newBenchPool[int](b))
	defer q.Dispose()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = q.Enqueue(i)
			q.TryDequeue()
			i++
		}
	})
}

// BenchmarkWriterWrite appends 1 KiB chunks through the io.Writer path.
func BenchmarkWriterWrite(b *testing.B) {
	chunk := make([]byte, 1024)
	p := newBenchPool[byte](b)
	b.SetBytes(int64(len(chunk)) * 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := collections.NewWriter[byte](p)
		for range 64 {
			if _, err := w.Write(chunk); err != nil {
				b.Fatal(err)
			}
		}
		w.Dispose()
	}
}

// BenchmarkMemopsMove measures overlapping moves used by Insert and RemoveAt.
func BenchmarkMemopsMove(b *testing.B) {
	buf := make([]int64, 4097)
	memops.FillAscending(buf, 0)
	b.SetBytes(4096 * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memops.Move(buf[1:], buf, 4096)
	}
}

// BenchmarkFacadeIntegration tests end-to-end shared pool use through the facade.
func BenchmarkFacadeIntegration(b *testing.B) {
	cfg := control.Default()
	cfg.Log.Level = "error"
	cfg.Metrics.Enabled = false
	pool.ResetShared()
	rt, err := facade.New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	defer func() {
		rt.Shutdown()
		pool.ResetShared()
		logutil.SetGlobalLogger(nil)
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := collections.NewPooledList[byte](nil)
		for j := range 1024 {
			_ = l.Add(byte(j))
		}
		l.Dispose()
	}
}
