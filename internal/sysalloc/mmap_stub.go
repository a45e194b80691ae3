// File: internal/sysalloc/mmap_stub.go
//go:build !linux

// Package sysalloc: fallback for platforms without the mmap source.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sysalloc

import "github.com/momentics/hioload-mem/api"

func platformSource() api.ChunkSource {
	return HeapSource{}
}
