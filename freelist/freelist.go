// File: freelist/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unsynchronized free-list core. The free list is a LIFO stack of slot
// handles over chunk-backed storage; the chunk list is release-only
// bookkeeping drained at Destroy and never touched on the hot path.
// Callers needing cross-goroutine use wrap it via NewConcurrent.

package freelist

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
)

// Slot is a handle to one fixed-size element. The zero Slot is invalid.
type Slot struct {
	data []byte
}

// Bytes returns the slot's element region, len == ElemSize.
func (s Slot) Bytes() []byte { return s.data }

// FreeList is the unsynchronized fixed-size-element pool. The caller
// guarantees exclusive access; concurrent unsynchronized use is a
// caller error.
type FreeList struct {
	cfg Config
	src api.ChunkSource

	free   []Slot       // LIFO stack of released/unused slots
	chunks *queue.Queue // raw chunk blocks, only for bulk release

	refillSize int // standing refill size for the next exhaustion

	totalAlloc int64
	totalFree  int64
	destroyed  bool
}

// New builds a pool and performs the initial refill of cfg.InitSize
// (resolved) slots. The pool must not be used if New returns an error.
func New(cfg Config) (*FreeList, error) {
	c, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	fl := &FreeList{
		cfg:        c,
		src:        c.Source,
		chunks:     queue.New(),
		refillSize: c.RefillSize,
	}
	if err := fl.refill(c.InitSize); err != nil {
		return nil, err
	}
	return fl, nil
}

// refill links one new chunk of n slots. Either the whole chunk is
// acquired and linked, or nothing is.
func (fl *FreeList) refill(n int) error {
	block, err := fl.src.Alloc(n * fl.cfg.ElemSize)
	if err != nil {
		return fmt.Errorf("%w: refill of %d slots: %v", api.ErrOutOfMemory, n, err)
	}
	fl.chunks.Add(block)
	es := fl.cfg.ElemSize
	for i := 0; i < n; i++ {
		fl.free = append(fl.free, Slot{data: block[i*es : (i+1)*es : (i+1)*es]})
	}
	return nil
}

// grow advances the standing refill size toward the cap. It never
// decreases and never exceeds MaxRefillSize, even when the
// multiplication overflows.
func (fl *FreeList) grow() {
	if fl.refillSize >= fl.cfg.MaxRefillSize {
		return
	}
	next := fl.refillSize * fl.cfg.GrowthFactor
	if next/fl.cfg.GrowthFactor != fl.refillSize || next >= fl.cfg.MaxRefillSize {
		next = fl.cfg.MaxRefillSize
	}
	if next > fl.refillSize {
		fl.refillSize = next
	}
}

// Alloc pops a slot off the free stack, refilling on exhaustion.
func (fl *FreeList) Alloc() (api.Slot, error) {
	if fl.destroyed {
		return nil, api.ErrPoolClosed
	}
	if len(fl.free) == 0 {
		if err := fl.refill(fl.refillSize); err != nil {
			return nil, err
		}
		fl.grow()
		if len(fl.free) == 0 {
			// Only reachable when a concurrent caller drained the
			// refill first; the caller retries.
			return nil, api.ErrExhausted
		}
	}
	s := fl.free[len(fl.free)-1]
	fl.free = fl.free[:len(fl.free)-1]
	fl.totalAlloc++
	return s, nil
}

// Free pushes the slot back onto the free stack. The link word at
// cfg.Offset is cleared so the element cannot be mistaken for a node
// still linked into a caller-side structure. No memory is returned to
// the chunk source.
func (fl *FreeList) Free(s api.Slot) {
	sl, ok := s.(Slot)
	if !ok || sl.data == nil {
		return
	}
	clear(sl.data[fl.cfg.Offset : fl.cfg.Offset+linkWordSize])
	fl.free = append(fl.free, sl)
	fl.totalFree++
}

// Destroy returns every chunk to the chunk source. Outstanding slots
// become invalid immediately; releasing them before Destroy is the
// caller's obligation, not checked here. Subsequent Destroy calls are
// no-ops.
func (fl *FreeList) Destroy() error {
	if fl.destroyed {
		return nil
	}
	var first error
	for fl.chunks.Length() > 0 {
		block := fl.chunks.Remove().([]byte)
		if err := fl.src.Free(block); err != nil && first == nil {
			first = err
		}
	}
	fl.free = nil
	fl.destroyed = true
	return first
}

// Stats reports allocation accounting.
func (fl *FreeList) Stats() api.FreeListStats {
	return api.FreeListStats{
		TotalAlloc: fl.totalAlloc,
		TotalFree:  fl.totalFree,
		InUse:      fl.totalAlloc - fl.totalFree,
		Chunks:     fl.chunks.Length(),
		FreeSlots:  len(fl.free),
		RefillSize: fl.refillSize,
	}
}

var _ api.FreeList = (*FreeList)(nil)
var _ api.Slot = Slot{}
