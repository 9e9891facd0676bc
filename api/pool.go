// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: size-classed array renting and return.

package api

// ReturnOption selects whether an array is scrubbed on its way back to a pool.
type ReturnOption uint8

const (
	// ReturnDefault scrubs only when the element type may hold references.
	ReturnDefault ReturnOption = iota
	// ReturnNone never scrubs.
	ReturnNone
	// ReturnClear always scrubs.
	ReturnClear
)

func (o ReturnOption) String() string {
	switch o {
	case ReturnNone:
		return "none"
	case ReturnClear:
		return "clear"
	default:
		return "default"
	}
}

// ArrayPool rents and recycles arrays of T grouped in power-of-two size classes.
// Implementations are safe for concurrent use.
type ArrayPool[T any] interface {
	// Rent returns an array whose length is at least minimumLength.
	// Contents are unspecified.
	Rent(minimumLength int) ([]T, error)

	// Return hands an array back using the pool's default scrub policy.
	// The caller must not touch the array afterwards; returning the same
	// array twice is a caller error.
	Return(array []T)

	// ReturnWith hands an array back with an explicit scrub option.
	ReturnWith(array []T, option ReturnOption)

	// Clear drops every retained array.
	Clear()

	// Stats exposes accounting counters for observability.
	Stats() PoolStats
}

// PoolStats aggregates array rent/return counters.
type PoolStats struct {
	Rents     uint64 // Rent calls that produced an array
	Hits      uint64 // rents served from a bucket
	Misses    uint64 // rents that allocated a tracked size class
	Untracked uint64 // rents above the maximum tracked length
	Returns   uint64 // arrays accepted into a bucket
	Discards  uint64 // arrays dropped: full bucket or unknown length
	Scrubs    uint64 // arrays zeroed on return
}

// HitRate is the share of tracked rents served from a bucket.
func (s PoolStats) HitRate() float64 {
	tracked := s.Hits + s.Misses
	if tracked == 0 {
		return 0
	}
	return float64(s.Hits) / float64(tracked)
}
