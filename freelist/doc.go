// Package freelist
// Author: momentics <momentics@gmail.com>
//
// Fixed-size-element free-list allocators for hioload-mem.
// Hands out identically shaped slots from bulk-allocated chunks so hot
// paths never touch the general-purpose allocator. Growth is chunked
// and policy-driven (refill size, growth factor, cap); released slots
// are retained for reuse and only Destroy returns memory to the chunk
// source.
// See freelist.go, concurrent.go, typed.go, manager.go for details.
package freelist
