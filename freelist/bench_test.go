// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bench_test.go — Allocation-path benchmarks.
package freelist_test

import (
	"testing"

	"github.com/momentics/hioload-mem/freelist"
)

func BenchmarkFreeList_AllocFree(b *testing.B) {
	fl, err := freelist.New(freelist.Config{ElemSize: 128})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	defer fl.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := fl.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		fl.Free(s)
	}
}

func BenchmarkConcurrent_AllocFree(b *testing.B) {
	fl, err := freelist.NewConcurrent(freelist.Config{
		ElemSize: 128,
		Policy:   freelist.Policy{InitSize: 1024, RefillSize: 1024, GrowthFactor: 2, MaxRefillSize: 8192},
	})
	if err != nil {
		b.Fatalf("NewConcurrent failed: %v", err)
	}
	defer fl.Destroy()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s, err := fl.Alloc()
			if err != nil {
				continue
			}
			fl.Free(s)
		}
	})
}

func BenchmarkTyped_AllocFree(b *testing.B) {
	type record struct {
		_ [128]byte
	}
	tp, err := freelist.NewTyped[record](freelist.Policy{InitSize: 1024})
	if err != nil {
		b.Fatalf("NewTyped failed: %v", err)
	}
	defer tp.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obj, err := tp.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		tp.Free(obj)
	}
}

func BenchmarkSyncPool_GetPut(b *testing.B) {
	type record struct {
		_ [128]byte
	}
	sp := freelist.NewSyncPool(func() *record { return new(record) })

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			sp.Put(sp.Get())
		}
	})
}
