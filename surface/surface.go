// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides packed-pixel render targets.
//
// A Surface owns a contiguous buffer of 32-bit 0xAARRGGBB words, one
// per pixel, addressed row-major with an explicit stride. Buffers come
// from the Go heap or from a mempool.Allocator; each surface records
// its origin and releases memory through the same origin on Destroy.
//
// Surfaces are single-owner and not safe for concurrent mutation.
package surface

import (
	"log/slog"
	"math"
	"unsafe"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/mempool"
)

// origin records which allocator produced a surface's pixel memory, so
// Destroy releases it consistently with how it was created.
type origin uint8

const (
	// originHeap marks Go-heap buffers; the collector reclaims them.
	originHeap origin = iota
	// originPool marks buffers owned by a mempool.Allocator.
	originPool
	// originExternal marks wrapped foreign buffers (framebuffers);
	// Destroy never touches them.
	originExternal
)

// Surface is a width x height pixel buffer of packed 0xAARRGGBB words.
type Surface struct {
	width  int
	height int
	stride int // row length in pixels; == width unless wrapping a padded framebuffer
	pix    []uint32
	size   int // total byte size of the pixel buffer

	origin origin
	alloc  *mempool.Allocator
	bytes  []byte // pool backing store, retained for Free

	destroyed bool
}

// New creates a heap-backed surface. The pixel buffer is zero-filled,
// i.e. fully transparent black. Dimensions must both be positive.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, blit.ErrInvalidParam
	}
	if width > math.MaxInt/4/height {
		return nil, blit.ErrOutOfMemory
	}
	return &Surface{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]uint32, width*height),
		size:   width * height * 4,
		origin: originHeap,
	}, nil
}

// NewFromPool creates a surface whose pixel buffer comes from the given
// allocator, 16-byte aligned. The buffer is zero-filled even when the
// allocator hands back recycled pool memory.
func NewFromPool(width, height int, a *mempool.Allocator) (*Surface, error) {
	if width <= 0 || height <= 0 || a == nil {
		return nil, blit.ErrInvalidParam
	}
	if width > math.MaxInt/4/height {
		return nil, blit.ErrOutOfMemory
	}

	n := width * height
	buf, err := a.Alloc(n*4, 16)
	if err != nil {
		return nil, err
	}

	// The allocator guarantees 16-byte alignment, so the word view is
	// always properly aligned.
	pix := unsafe.Slice((*uint32)(unsafe.Pointer(&buf[0])), n)
	clear(pix)

	return &Surface{
		width:  width,
		height: height,
		stride: width,
		pix:    pix,
		size:   n * 4,
		origin: originPool,
		alloc:  a,
		bytes:  buf,
	}, nil
}

// FromBuffer wraps an externally owned pixel buffer, such as one handed
// out by a window system. The stride is in pixels and may exceed width
// when the provider pads its rows; it must not be smaller. The buffer
// must hold at least stride*height words. Destroy leaves the buffer
// untouched.
func FromBuffer(pix []uint32, width, height, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 || stride < width || stride > math.MaxInt/height {
		return nil, blit.ErrInvalidParam
	}
	if len(pix) < stride*height {
		return nil, blit.ErrInvalidParam
	}
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
		size:   stride * height * 4,
		origin: originExternal,
	}, nil
}

// Destroy releases the pixel buffer through whichever origin produced
// it. Destroy on nil or an already destroyed surface is a no-op.
func (s *Surface) Destroy() error {
	if s == nil || s.destroyed {
		return nil
	}
	s.destroyed = true

	var err error
	switch s.origin {
	case originPool:
		err = s.alloc.Free(s.bytes)
	case originHeap, originExternal:
		// Heap buffers are collected; external buffers are not ours.
	}

	s.pix = nil
	s.bytes = nil
	s.alloc = nil
	if err != nil {
		blit.Logger().Warn("surface: destroy failed",
			slog.String("error", err.Error()))
	}
	return err
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the row length in pixels. Row y starts at index
// y*Stride() in Pix.
func (s *Surface) Stride() int { return s.stride }

// ByteSize returns the total byte size of the pixel buffer.
func (s *Surface) ByteSize() int { return s.size }

// Pix exposes the packed pixel words. The slice aliases the surface's
// buffer; it is intended for read-back and interop, not for lifetime
// extension past Destroy.
func (s *Surface) Pix() []uint32 { return s.pix }

// Valid reports whether the surface can be drawn to.
func (s *Surface) Valid() bool {
	return s != nil && !s.destroyed && s.pix != nil
}

// Clear fills every pixel with the given color in raster order.
func (s *Surface) Clear(c blit.Color) error {
	if !s.Valid() {
		return blit.ErrInvalidParam
	}
	p := c.Pack()
	if s.stride == s.width {
		fillWords(s.pix[:s.width*s.height], p, ActiveKernel())
		return nil
	}
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		fillWords(row, p, ActiveKernel())
	}
	return nil
}

// SetPixel writes a pixel. Out-of-bounds writes are silently dropped;
// they never wrap and never panic.
func (s *Surface) SetPixel(x, y int, c blit.Color) {
	if !s.Valid() || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pix[y*s.stride+x] = c.Pack()
}

// PixelAt reads a pixel. Out-of-bounds reads return fully transparent
// black.
func (s *Surface) PixelAt(x, y int) blit.Color {
	if !s.Valid() || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return blit.Color{}
	}
	return blit.Unpack(s.pix[y*s.stride+x])
}

// FillSpan fills the horizontal run [x0, x1] on row y, endpoints
// included and in either order. The span is clipped to the surface.
func (s *Surface) FillSpan(x0, x1, y int, c blit.Color) {
	if !s.Valid() || y < 0 || y >= s.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= s.width {
		x1 = s.width - 1
	}
	if x0 > x1 {
		return
	}
	row := s.pix[y*s.stride+x0 : y*s.stride+x1+1]
	fillWords(row, c.Pack(), ActiveKernel())
}

// FillColumn fills the vertical run [y0, y1] in column x, endpoints
// included and in either order. The run is clipped to the surface.
func (s *Surface) FillColumn(x, y0, y1 int, c blit.Color) {
	if !s.Valid() || x < 0 || x >= s.width {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 >= s.height {
		y1 = s.height - 1
	}
	p := c.Pack()
	for y := y0; y <= y1; y++ {
		s.pix[y*s.stride+x] = p
	}
}
