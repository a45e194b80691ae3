// File: freelist/config.go
// Author: momentics <momentics@gmail.com>
//
// Pool configuration with zero-means-default normalization.

package freelist

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/sysalloc"
)

// Baseline policy applied when a caller leaves a field zero.
const (
	DefaultInitSize   = 64
	DefaultRefillSize = 64

	// defaultGrowthFactor keeps refills constant-sized unless the
	// caller opts into geometric growth.
	defaultGrowthFactor = 1

	// linkWordSize is the pointer-sized word cleared at Config.Offset
	// on Free. Every element must be able to hold one.
	linkWordSize = 8
)

// Policy controls how many slots a pool creates up front and each time
// it runs dry. Zero fields resolve to documented defaults.
type Policy struct {
	// InitSize is the slot count of the initial refill performed at
	// construction. Zero means DefaultInitSize.
	InitSize int

	// RefillSize is the slot count of the first exhaustion-triggered
	// refill. Zero means DefaultRefillSize.
	RefillSize int

	// GrowthFactor multiplies the standing refill size after each
	// exhaustion refill. Zero means 1 (constant-size refills).
	GrowthFactor int

	// MaxRefillSize caps the standing refill size. Zero means the
	// resolved InitSize.
	MaxRefillSize int
}

// Config describes a byte-slab pool.
type Config struct {
	// ElemSize is the fixed slot size in bytes. Must be at least
	// Offset plus one pointer-sized link word.
	ElemSize int

	// Offset is the byte offset of the caller's intrusive link field
	// within the element. Free clears the link word there so a
	// released slot cannot be mistaken for a node still linked into a
	// caller structure. The pool keeps its own bookkeeping out of
	// band and never reads the element.
	Offset int

	Policy

	// Source supplies chunks. Nil means the platform default
	// (anonymous mmap on Linux, Go heap elsewhere).
	Source api.ChunkSource
}

func (p Policy) normalize() (Policy, error) {
	if p.InitSize < 0 || p.RefillSize < 0 || p.GrowthFactor < 0 || p.MaxRefillSize < 0 {
		return Policy{}, api.ErrInvalidArgument
	}
	if p.InitSize == 0 {
		p.InitSize = DefaultInitSize
	}
	if p.RefillSize == 0 {
		p.RefillSize = DefaultRefillSize
	}
	if p.GrowthFactor == 0 {
		p.GrowthFactor = defaultGrowthFactor
	}
	if p.MaxRefillSize == 0 {
		p.MaxRefillSize = p.InitSize
	}
	return p, nil
}

func (c Config) normalize() (Config, error) {
	if c.ElemSize <= 0 || c.Offset < 0 || c.ElemSize < c.Offset+linkWordSize {
		return Config{}, api.ErrInvalidArgument
	}
	pol, err := c.Policy.normalize()
	if err != nil {
		return Config{}, err
	}
	c.Policy = pol
	if c.Source == nil {
		c.Source = sysalloc.Default()
	}
	return c, nil
}
