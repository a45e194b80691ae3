// File: internal/sysalloc/mmap_linux.go
//go:build linux

// Package sysalloc: Linux chunk source backed by anonymous mmap.
//
// Chunks come straight from the kernel as zeroed private pages, so
// destroying a pool returns its memory to the OS immediately instead
// of waiting for the collector.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sysalloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-mem/api"
)

// MmapSource allocates chunks via anonymous private mappings.
type MmapSource struct{}

// Alloc maps a zeroed block of exactly size bytes.
func (MmapSource) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, api.ErrInvalidArgument
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return data, nil
}

// Free unmaps the block.
func (MmapSource) Free(block []byte) error {
	if len(block) == 0 {
		return nil
	}
	return unix.Munmap(block)
}

func platformSource() api.ChunkSource {
	return MmapSource{}
}

var _ api.ChunkSource = MmapSource{}
