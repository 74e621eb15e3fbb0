// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"sync/atomic"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/platform"
)

// Kernel identifies a bulk pixel-fill implementation. The set is closed
// and dispatched through an explicit switch; all kernels produce
// byte-identical output and differ only in speed. The scalar loop is
// the semantic baseline every other kernel is validated against.
type Kernel uint8

const (
	// KernelScalar is the plain one-word-at-a-time loop.
	KernelScalar Kernel = iota
	// KernelWide is an eight-way unrolled loop, worthwhile on cores
	// with wide stores (reported as AVX2 or NEON by the probe).
	KernelWide
)

// String returns the kernel name for diagnostics.
func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelWide:
		return "wide"
	default:
		return "unknown"
	}
}

// kernelOverride holds 1+Kernel when forced, 0 for automatic selection.
var kernelOverride atomic.Int32

// ActiveKernel returns the kernel bulk fills currently use: the forced
// kernel if SetKernel was called, otherwise one chosen from the
// platform capability probe. Absence of SIMD support is never an error,
// only a slower answer.
func ActiveKernel() Kernel {
	if v := kernelOverride.Load(); v != 0 {
		return Kernel(v - 1)
	}
	caps := platform.Detect()
	if caps.HasAVX2 || caps.HasNEON {
		return KernelWide
	}
	return KernelScalar
}

// SetKernel forces a specific kernel, bypassing the capability probe.
// Useful for tests and for honoring blit.Options.ForceScalar.
func SetKernel(k Kernel) {
	kernelOverride.Store(int32(k) + 1)
}

// AutoKernel restores capability-based kernel selection.
func AutoKernel() {
	kernelOverride.Store(0)
}

// ApplyOptions configures kernel selection from persisted options:
// ForceScalar pins the scalar kernel, otherwise selection returns to
// the capability probe.
func ApplyOptions(o blit.Options) {
	if o.ForceScalar {
		SetKernel(KernelScalar)
		return
	}
	AutoKernel()
}

// fillWords writes v into every element of dst using the given kernel.
func fillWords(dst []uint32, v uint32, k Kernel) {
	switch k {
	case KernelWide:
		n := len(dst)
		i := 0
		for ; i+8 <= n; i += 8 {
			dst[i+0] = v
			dst[i+1] = v
			dst[i+2] = v
			dst[i+3] = v
			dst[i+4] = v
			dst[i+5] = v
			dst[i+6] = v
			dst[i+7] = v
		}
		for ; i < n; i++ {
			dst[i] = v
		}
	default:
		for i := range dst {
			dst[i] = v
		}
	}
}
