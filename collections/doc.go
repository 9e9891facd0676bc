// Package collections
// Author: momentics <momentics@gmail.com>
//
// Growable buffers backed by pool.ArrayPool.
// Containers start without storage, rent on first write, grow by renting a
// larger size class and moving the live elements, and hand storage back on
// Dispose. Element types that can hold references have vacated slots zeroed
// so pooled arrays never keep garbage reachable.
//
// ValueList, PooledList, PooledStack, PooledQueue and Writer have a single
// owner. ConcurrentList, ConcurrentStack and ConcurrentQueue wrap them with
// one mutex per instance.
package collections
