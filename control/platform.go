// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform and pool debug probes.

package control

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-mem/pool"
)

// CacheLineSize is the padding unit pool buckets use to avoid false sharing.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// RegisterPlatformProbes adds CPU facts relevant to bulk copies.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOOS + "/" + runtime.GOARCH
	})
	dp.RegisterProbe("platform.cacheline", func() any {
		return CacheLineSize
	})
	dp.RegisterProbe("platform.simd", func() any {
		return map[string]bool{
			"avx2":    cpu.X86.HasAVX2,
			"avx512f": cpu.X86.HasAVX512F,
			"asimd":   cpu.ARM64.HasASIMD,
		}
	})
}

// RegisterPoolProbes exposes the shared pools.
func RegisterPoolProbes(dp *DebugProbes) {
	dp.RegisterProbe("pool.shared", func() any {
		return pool.SharedStats()
	})
}

// PublishPoolStats copies the shared pools' counters into mr.
func PublishPoolStats(mr *MetricsRegistry) {
	for _, s := range pool.SharedStats() {
		mr.SetPoolStats(s.Name, s.Stats)
	}
}
