// File: internal/sysalloc/source.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral chunk sources. Concrete mmap-backed sources are
// selected through platform-specific factories in separate files.

package sysalloc

import (
	"github.com/momentics/hioload-mem/api"
)

// HeapSource allocates chunks from the Go heap. Blocks are zeroed by
// make and reclaimed by the collector once released and unreferenced.
type HeapSource struct{}

// Alloc returns a zeroed block of size bytes.
func (HeapSource) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrInvalidArgument
	}
	return make([]byte, size), nil
}

// Free drops the block reference; the collector reclaims it.
func (HeapSource) Free(block []byte) error {
	return nil
}

// Default returns the preferred chunk source for this platform:
// anonymous mmap where available, Go heap otherwise.
func Default() api.ChunkSource {
	return platformSource()
}

var _ api.ChunkSource = HeapSource{}
