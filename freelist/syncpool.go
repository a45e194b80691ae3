// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package freelist

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// SyncPool wraps sync.Pool for generic usage. Unlike the slab pools it
// gives no growth control and lets the collector drain idle objects;
// use it for objects whose lifetime straddles GC cycles anyway.
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool with a creator function.
func NewSyncPool[T any](creator func() T) *SyncPool[T] {
	return &SyncPool[T]{
		pool: &sync.Pool{New: func() any { return creator() }},
	}
}

func (sp *SyncPool[T]) Get() T {
	return sp.pool.Get().(T)
}

func (sp *SyncPool[T]) Put(obj T) {
	sp.pool.Put(obj)
}

var _ api.ObjectPool[any] = (*SyncPool[any])(nil)
