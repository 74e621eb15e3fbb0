// Package blit provides a software rasterization and color-compositing
// engine for Go.
//
// # Overview
//
// blit is a Pure Go pixel-pushing library: packed 32-bit RGBA surfaces,
// scanline primitive rasterization, a full blend-mode algebra, and color
// space conversions, backed by an optional pool allocator for predictable
// frame memory.
//
// # Quick Start
//
//	import (
//	    "github.com/gogfx/blit"
//	    "github.com/gogfx/blit/raster"
//	    "github.com/gogfx/blit/surface"
//	)
//
//	s, _ := surface.New(640, 480)
//	defer s.Destroy()
//
//	s.Clear(blit.Color{R: 255, G: 255, B: 255, A: 255})
//	raster.CircleFilled(s, 320, 240, 100, blit.Color{B: 255, A: 255})
//	img := s.Snapshot() // *image.RGBA
//
// # Architecture
//
// The library is organized into:
//   - blit: color model, blend modes, color spaces, geometry, options
//   - surface: pixel buffers, heap- or pool-backed, image.Image interop
//   - raster: line/circle/ellipse/polygon/text primitives
//   - mempool: fixed-size pool allocator with aligned block management
//   - platform: read-only CPU/GPU/display capability probe
//
// # Pixel Format
//
// Every surface pixel is one packed 32-bit word, 0xAARRGGBB when read as
// an integer: alpha in the top byte, then red, green, blue. This layout
// is preserved exactly for interop with external framebuffers.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles
// are in radians.
//
// # Concurrency
//
// Surfaces and allocators are single-owner and not safe for concurrent
// mutation. Partition work by surface, or serialize externally. There is
// no locking on the pixel-write path.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "1.0.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)
