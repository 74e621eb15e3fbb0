// Package mempool implements a fixed-size pool allocator for rendering
// workloads.
//
// A pool reserves one contiguous region up front and serves aligned
// block allocations out of it with a first-fit scan over a free list.
// Blocks are split when oversized and returned to the free list on
// Free. Freed blocks are NOT coalesced with their neighbors, so pools
// fragment over long alloc/free churn; the intended usage pattern is a
// bounded-lifetime pool (for example one pool per frame or per scene)
// that is destroyed wholesale. Stats exposes the counters needed to
// watch fragmentation in longer-lived pools.
//
// Every block carries a sentinel tag. A tag mismatch during any list
// traversal means the bookkeeping has been stomped; the operation
// aborts with an error instead of walking a suspect list.
package mempool

import (
	"log/slog"
	"unsafe"

	"github.com/gogfx/blit"
)

const (
	// MinPoolSize is the smallest pool New accepts.
	MinPoolSize = 1024

	// minAlignment is the floor for every allocation's alignment and
	// for the pool base itself.
	minAlignment = 16

	// blockHeaderSize is the bookkeeping space reserved in the pool
	// ahead of each block's user region.
	blockHeaderSize = 48

	// blockMagic tags every live block for corruption detection.
	blockMagic = 0xDEADBEEF
)

// block is the bookkeeping record for one region of the pool. The
// record itself lives in Go memory; blockHeaderSize bytes of the pool
// stay reserved ahead of each user region so that split arithmetic and
// capacity accounting mirror the on-pool layout.
type block struct {
	off       int // pool offset of the reserved header region
	size      int // usable bytes following the header
	alignment int
	magic     uint32

	// user region, valid while the block is on the used list
	userOff int
	userLen int

	next, prev *block
}

// Allocator owns one contiguous pool and serves aligned blocks from it.
// Not safe for concurrent use.
type Allocator struct {
	raw  []byte // backing store, poolSize+minAlignment bytes
	pool []byte // aligned usable region, len() == poolSize
	base uintptr

	poolSize       int
	bytesAllocated int
	bytesFree      int

	freeList *block
	usedList *block

	destroyed bool
}

// Stats is a snapshot of an allocator's byte counters.
type Stats struct {
	PoolSize  int
	Allocated int
	Free      int
}

// New creates an allocator with a pool of poolSize usable bytes.
// Pools smaller than MinPoolSize are rejected.
func New(poolSize int) (*Allocator, error) {
	if poolSize < MinPoolSize {
		return nil, blit.ErrInvalidParam
	}

	raw := make([]byte, poolSize+minAlignment)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	skew := int(alignUp(addr, minAlignment) - addr)

	a := &Allocator{
		raw:       raw,
		pool:      raw[skew : skew+poolSize],
		poolSize:  poolSize,
		bytesFree: poolSize,
	}
	a.base = uintptr(unsafe.Pointer(&a.pool[0]))

	initial := &block{
		off:       0,
		size:      poolSize - blockHeaderSize,
		alignment: minAlignment,
		magic:     blockMagic,
	}
	a.insertFree(initial)

	blit.Logger().Debug("mempool: pool created",
		slog.Int("size", poolSize))
	return a, nil
}

// Alloc returns a zero-copy subslice of the pool with the requested
// size, whose first byte sits on the requested alignment. The alignment
// must be a power of two and is coerced up to at least 16.
func (a *Allocator) Alloc(size, alignment int) ([]byte, error) {
	if a == nil || a.destroyed || size <= 0 {
		return nil, blit.ErrInvalidParam
	}
	if alignment < minAlignment {
		alignment = minAlignment
	}
	if alignment&(alignment-1) != 0 {
		return nil, blit.ErrInvalidParam
	}

	alignedSize := alignSize(size, alignment)
	totalSize := blockHeaderSize + alignedSize + alignment

	// Requests larger than the pool can never succeed, and sizes near
	// the int maximum wrap the padded totals negative. Both would slip
	// past the capacity check below, so reject them up front.
	if size > a.poolSize || alignedSize < size || totalSize < alignedSize {
		return nil, blit.ErrOutOfMemory
	}

	// First-fit scan. Capacity, not best fit: the first block that can
	// hold header + aligned payload + alignment slack wins.
	blk := a.freeList
	for blk != nil {
		if blk.magic != blockMagic {
			return nil, blit.ErrCorrupted
		}
		if blk.size >= totalSize {
			break
		}
		blk = blk.next
	}
	if blk == nil {
		return nil, blit.ErrOutOfMemory
	}

	a.removeFree(blk)

	userAddr := alignUp(a.base+uintptr(blk.off+blockHeaderSize), uintptr(alignment))
	userOff := int(userAddr - a.base)

	// Split off the remainder when it can hold another header plus at
	// least one minimally aligned allocation.
	usedSize := userOff - blk.off + alignedSize
	if blk.size > usedSize+blockHeaderSize+minAlignment {
		rest := &block{
			off:       blk.off + usedSize,
			size:      blk.size - usedSize,
			alignment: minAlignment,
			magic:     blockMagic,
		}
		a.insertFree(rest)
		blk.size = usedSize - blockHeaderSize
	}

	blk.alignment = alignment
	blk.userOff = userOff
	blk.userLen = size
	a.insertUsed(blk)

	a.bytesAllocated += blk.size
	a.bytesFree -= blk.size

	return a.pool[userOff : userOff+size : userOff+alignedSize], nil
}

// Free returns a block to the free list. The block is identified by the
// pointer identity of the slice's first byte against each used block's
// aligned user address, and the slice length must match the recorded
// allocation. A nil/empty slice or an unknown pointer is a silent
// no-op, matching the bounded-lifetime pool contract. A sentinel tag
// mismatch aborts with ErrCorrupted.
//
// The block keeps its size; adjacent free blocks are not merged.
func (a *Allocator) Free(buf []byte) error {
	if a == nil || a.destroyed || len(buf) == 0 {
		return nil
	}

	target := &buf[0]
	blk := a.usedList
	for blk != nil {
		if blk.magic != blockMagic {
			return blit.ErrCorrupted
		}
		if &a.pool[blk.userOff] == target {
			break
		}
		blk = blk.next
	}
	if blk == nil {
		return nil
	}
	if len(buf) != blk.userLen {
		return blit.ErrInvalidParam
	}

	a.removeUsed(blk)
	a.bytesAllocated -= blk.size
	a.bytesFree += blk.size
	a.insertFree(blk)
	return nil
}

// Destroy releases the entire pool in one step. Every slice previously
// returned by Alloc becomes invalid. Destroy on a nil allocator is a
// no-op.
func (a *Allocator) Destroy() {
	if a == nil || a.destroyed {
		return
	}
	a.raw = nil
	a.pool = nil
	a.freeList = nil
	a.usedList = nil
	a.bytesAllocated = 0
	a.bytesFree = 0
	a.destroyed = true
	blit.Logger().Debug("mempool: pool destroyed",
		slog.Int("size", a.poolSize))
}

// Stats returns the current byte counters.
func (a *Allocator) Stats() Stats {
	if a == nil || a.destroyed {
		return Stats{}
	}
	return Stats{
		PoolSize:  a.poolSize,
		Allocated: a.bytesAllocated,
		Free:      a.bytesFree,
	}
}

func (a *Allocator) insertFree(blk *block) {
	blk.next = a.freeList
	blk.prev = nil
	if a.freeList != nil {
		a.freeList.prev = blk
	}
	a.freeList = blk
}

func (a *Allocator) removeFree(blk *block) {
	if blk.prev != nil {
		blk.prev.next = blk.next
	} else {
		a.freeList = blk.next
	}
	if blk.next != nil {
		blk.next.prev = blk.prev
	}
	blk.next, blk.prev = nil, nil
}

func (a *Allocator) insertUsed(blk *block) {
	blk.next = a.usedList
	blk.prev = nil
	if a.usedList != nil {
		a.usedList.prev = blk
	}
	a.usedList = blk
}

func (a *Allocator) removeUsed(blk *block) {
	if blk.prev != nil {
		blk.prev.next = blk.next
	} else {
		a.usedList = blk.next
	}
	if blk.next != nil {
		blk.next.prev = blk.prev
	}
	blk.next, blk.prev = nil, nil
}

func alignSize(size, alignment int) int {
	return (size + alignment - 1) &^ (alignment - 1)
}

func alignUp(addr, alignment uintptr) uintptr {
	return (addr + alignment - 1) &^ (alignment - 1)
}
