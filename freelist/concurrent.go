// File: freelist/concurrent.go
// Author: momentics <momentics@gmail.com>
//
// Mutex-guarded pool variant. Shares the FreeList algorithm; every
// operation runs under one pool-wide lock, including the refill a
// depleted Alloc triggers (refill is not reentrant-safe). Selected at
// construction so unsynchronized call sites pay no lock cost.

package freelist

import (
	"sync"

	"github.com/momentics/hioload-mem/api"
)

// Concurrent is the thread-safe pool variant.
type Concurrent struct {
	mu sync.Mutex
	fl *FreeList
}

// NewConcurrent builds a mutex-guarded pool with the same semantics as New.
func NewConcurrent(cfg Config) (*Concurrent, error) {
	fl, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Concurrent{fl: fl}, nil
}

// Alloc takes the pool lock for the whole check/refill/pop sequence.
// An ErrExhausted return means another goroutine drained a successful
// refill first; the caller retries.
func (c *Concurrent) Alloc() (api.Slot, error) {
	c.mu.Lock()
	s, err := c.fl.Alloc()
	c.mu.Unlock()
	return s, err
}

// Free returns the slot under the pool lock.
func (c *Concurrent) Free(s api.Slot) {
	c.mu.Lock()
	c.fl.Free(s)
	c.mu.Unlock()
}

// Destroy releases all chunks under the pool lock.
func (c *Concurrent) Destroy() error {
	c.mu.Lock()
	err := c.fl.Destroy()
	c.mu.Unlock()
	return err
}

// Stats snapshots accounting under the pool lock.
func (c *Concurrent) Stats() api.FreeListStats {
	c.mu.Lock()
	st := c.fl.Stats()
	c.mu.Unlock()
	return st
}

var _ api.FreeList = (*Concurrent)(nil)
