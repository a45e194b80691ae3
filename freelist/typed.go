// File: freelist/typed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Generic typed pool over the same refill/growth policy as FreeList.
// Slabs are []T chunks; the free stack holds element pointers, so Free
// needs no handle bookkeeping. Object contents are not reset between
// uses.

package freelist

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// Typed is an unsynchronized fixed-type object pool.
type Typed[T any] struct {
	pol Policy

	chunks [][]T // keeps slabs reachable; never traversed after refill
	free   []*T  // LIFO stack

	refillSize int

	totalAlloc int64
	totalFree  int64
	destroyed  bool
}

// NewTyped builds a typed pool and performs the initial refill.
func NewTyped[T any](pol Policy) (*Typed[T], error) {
	p, err := pol.normalize()
	if err != nil {
		return nil, err
	}
	tp := &Typed[T]{pol: p, refillSize: p.RefillSize}
	tp.refill(p.InitSize)
	return tp, nil
}

func (tp *Typed[T]) refill(n int) {
	slab := make([]T, n)
	tp.chunks = append(tp.chunks, slab)
	for i := range slab {
		tp.free = append(tp.free, &slab[i])
	}
}

func (tp *Typed[T]) grow() {
	if tp.refillSize >= tp.pol.MaxRefillSize {
		return
	}
	next := tp.refillSize * tp.pol.GrowthFactor
	if next/tp.pol.GrowthFactor != tp.refillSize || next >= tp.pol.MaxRefillSize {
		next = tp.pol.MaxRefillSize
	}
	if next > tp.refillSize {
		tp.refillSize = next
	}
}

// Alloc returns a pooled object. Contents carry whatever the previous
// owner left behind.
func (tp *Typed[T]) Alloc() (*T, error) {
	if tp.destroyed {
		return nil, api.ErrPoolClosed
	}
	if len(tp.free) == 0 {
		tp.refill(tp.refillSize)
		tp.grow()
	}
	obj := tp.free[len(tp.free)-1]
	tp.free = tp.free[:len(tp.free)-1]
	tp.totalAlloc++
	return obj, nil
}

// Free returns an object to the pool. The object must come from this
// pool and not be freed twice; violations are not detected.
func (tp *Typed[T]) Free(obj *T) {
	if obj == nil {
		return
	}
	tp.free = append(tp.free, obj)
	tp.totalFree++
}

// Destroy drops all slabs; the collector reclaims them once
// outstanding references are gone.
func (tp *Typed[T]) Destroy() error {
	tp.chunks = nil
	tp.free = nil
	tp.destroyed = true
	return nil
}

// Stats reports allocation accounting.
func (tp *Typed[T]) Stats() api.FreeListStats {
	return api.FreeListStats{
		TotalAlloc: tp.totalAlloc,
		TotalFree:  tp.totalFree,
		InUse:      tp.totalAlloc - tp.totalFree,
		Chunks:     len(tp.chunks),
		FreeSlots:  len(tp.free),
		RefillSize: tp.refillSize,
	}
}

// Guarded is the mutex-guarded typed pool variant.
type Guarded[T any] struct {
	mu sync.Mutex
	tp *Typed[T]
}

// NewGuarded builds a thread-safe typed pool.
func NewGuarded[T any](pol Policy) (*Guarded[T], error) {
	tp, err := NewTyped[T](pol)
	if err != nil {
		return nil, err
	}
	return &Guarded[T]{tp: tp}, nil
}

func (g *Guarded[T]) Alloc() (*T, error) {
	g.mu.Lock()
	obj, err := g.tp.Alloc()
	g.mu.Unlock()
	return obj, err
}

func (g *Guarded[T]) Free(obj *T) {
	g.mu.Lock()
	g.tp.Free(obj)
	g.mu.Unlock()
}

func (g *Guarded[T]) Destroy() error {
	g.mu.Lock()
	err := g.tp.Destroy()
	g.mu.Unlock()
	return err
}

func (g *Guarded[T]) Stats() api.FreeListStats {
	g.mu.Lock()
	st := g.tp.Stats()
	g.mu.Unlock()
	return st
}
