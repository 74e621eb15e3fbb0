// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogfx/blit"
	"github.com/gogfx/blit/mempool"
)

// Pool recycles surfaces of one fixed dimension, all backed by a single
// allocator. It suits render loops that need scratch surfaces every
// frame without churning the pool allocator's free list.
//
// Like the rest of the core, a Pool is single-owner: use it from one
// goroutine or serialize externally.
type Pool struct {
	alloc    *mempool.Allocator
	ownAlloc bool
	free     []*Surface
	max      int
	width    int
	height   int
}

// NewPool creates a pool for width x height surfaces retaining at most
// max free surfaces; max <= 0 selects the blit.Options default. The
// backing allocator is sized from blit.DefaultOptions unless
// NewPoolWithAllocator is used.
func NewPool(width, height, max int) (*Pool, error) {
	if width <= 0 || height <= 0 {
		return nil, blit.ErrInvalidParam
	}
	if max <= 0 {
		max = blit.DefaultOptions().SurfacePoolMax
	}

	// Room for max surfaces plus block bookkeeping slack.
	need := width*height*4*max + 64*1024
	if floor := blit.DefaultOptions().SurfacePoolSize; need < floor {
		need = floor
	}
	a, err := mempool.New(need)
	if err != nil {
		return nil, err
	}
	return &Pool{
		alloc:    a,
		ownAlloc: true,
		free:     make([]*Surface, 0, max),
		max:      max,
		width:    width,
		height:   height,
	}, nil
}

// NewPoolWithAllocator creates a pool drawing from a caller-owned
// allocator. The pool never destroys the allocator.
func NewPoolWithAllocator(width, height, max int, a *mempool.Allocator) (*Pool, error) {
	if width <= 0 || height <= 0 || max <= 0 || a == nil {
		return nil, blit.ErrInvalidParam
	}
	return &Pool{
		alloc:  a,
		free:   make([]*Surface, 0, max),
		max:    max,
		width:  width,
		height: height,
	}, nil
}

// Get returns a cleared surface of the pool's dimensions, reusing a
// retained one when available.
func (p *Pool) Get() (*Surface, error) {
	if p == nil {
		return nil, blit.ErrInvalidParam
	}
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s, nil
	}
	return NewFromPool(p.width, p.height, p.alloc)
}

// Put returns a surface to the pool for reuse. The surface is cleared
// to transparent black before it is retained. Surfaces of the wrong
// dimensions, and overflow beyond the retention cap, are destroyed
// instead.
func (p *Pool) Put(s *Surface) {
	if p == nil || s == nil || !s.Valid() {
		return
	}
	if s.width != p.width || s.height != p.height || len(p.free) >= p.max {
		_ = s.Destroy()
		return
	}
	_ = s.Clear(blit.Color{})
	p.free = append(p.free, s)
}

// Destroy releases every retained surface and, when the pool owns its
// allocator, the allocator itself.
func (p *Pool) Destroy() {
	if p == nil {
		return
	}
	for _, s := range p.free {
		_ = s.Destroy()
	}
	p.free = nil
	if p.ownAlloc {
		p.alloc.Destroy()
	}
	p.alloc = nil
}
