package blit

import "errors"

// Error taxonomy shared by all sub-packages. Every fallible operation
// reports failure through its return channel; there is no panic-based
// control flow anywhere in the library.
var (
	// ErrInvalidParam is returned for nil surfaces, non-positive
	// dimensions, negative radii or thicknesses, and bad alignments.
	ErrInvalidParam = errors.New("blit: invalid parameter")

	// ErrOutOfMemory is returned when a pool is exhausted or a backing
	// allocation fails.
	ErrOutOfMemory = errors.New("blit: out of memory")

	// ErrNotSupported is returned when a requested platform or
	// accelerated feature is unavailable. The scalar core never
	// returns it.
	ErrNotSupported = errors.New("blit: platform not supported")

	// ErrCorrupted is returned when an allocator block's sentinel tag
	// has been overwritten. The operation aborts rather than walking a
	// suspect list.
	ErrCorrupted = errors.New("blit: memory corruption detected")
)
