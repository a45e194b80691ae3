// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract allocator APIs: fixed-size free-list pools for
// zero-allocation reuse of identically shaped records.

package api

// Slot is a fixed-size element handed out by a FreeList.
//
// The caller owns every byte of the slot between Alloc and Free and may
// store arbitrary payload there. Slot contents are not zeroed on
// allocation or release; a freshly created chunk is zeroed once by the
// chunk source.
type Slot interface {
	// Bytes returns the slot's full element region. Its length equals
	// the pool's element size for the lifetime of the pool.
	Bytes() []byte
}

// FreeList is a fixed-size-element sub-allocator. It hands out slots
// from bulk-allocated chunks, growing on demand and retaining released
// slots for reuse until Destroy.
type FreeList interface {
	// Alloc returns a free slot, refilling the pool from the chunk
	// source when exhausted. Returns ErrOutOfMemory (wrapped) when the
	// chunk source cannot satisfy a refill, ErrExhausted when a
	// concurrent caller drained a successful refill before this one
	// could take a slot (retry), and ErrPoolClosed after Destroy.
	Alloc() (Slot, error)

	// Free returns a slot to the pool. The slot must have been
	// allocated from this pool and not freed already; violations are
	// not detected. Memory is never returned to the chunk source.
	Free(Slot)

	// Destroy releases every chunk back to the chunk source. All
	// outstanding slots become invalid immediately.
	Destroy() error

	// Stats exposes allocation accounting for observability.
	Stats() FreeListStats
}

// ChunkSource is the bulk allocator a FreeList draws chunks from.
// Implementations must return zero-initialized blocks.
type ChunkSource interface {
	// Alloc returns a zeroed block of exactly size bytes.
	Alloc(size int) ([]byte, error)

	// Free returns a block previously obtained from Alloc.
	Free(block []byte) error
}

// ObjectPool provides generic pooling of Go objects allocated transiently.
type ObjectPool[T any] interface {
	// Get returns an available instance from pool
	Get() T

	// Put returns an instance for reuse
	Put(obj T)
}

// FreeListStats aggregates slot allocation/reuse stats.
type FreeListStats struct {
	TotalAlloc int64 // slots handed out since init
	TotalFree  int64 // slots returned since init
	InUse      int64 // TotalAlloc - TotalFree
	Chunks     int   // chunks currently owned by the pool
	FreeSlots  int   // slots currently on the free stack
	RefillSize int   // standing refill size for the next exhaustion
}
