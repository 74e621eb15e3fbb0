// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"testing"

	"github.com/gogfx/blit"
)

func TestKernelsAgree(t *testing.T) {
	// Lengths around the unroll width, including the empty slice.
	for _, n := range []int{0, 1, 7, 8, 9, 16, 31, 64, 100} {
		scalar := make([]uint32, n)
		wide := make([]uint32, n)
		fillWords(scalar, 0xDEADBEEF, KernelScalar)
		fillWords(wide, 0xDEADBEEF, KernelWide)
		for i := range scalar {
			if scalar[i] != wide[i] {
				t.Fatalf("n=%d: kernels disagree at %d", n, i)
			}
			if scalar[i] != 0xDEADBEEF {
				t.Fatalf("n=%d: wrong value at %d: %#08x", n, i, scalar[i])
			}
		}
	}
}

func TestSetKernelOverride(t *testing.T) {
	defer AutoKernel()

	SetKernel(KernelScalar)
	if got := ActiveKernel(); got != KernelScalar {
		t.Errorf("forced scalar, ActiveKernel = %v", got)
	}
	SetKernel(KernelWide)
	if got := ActiveKernel(); got != KernelWide {
		t.Errorf("forced wide, ActiveKernel = %v", got)
	}

	AutoKernel()
	// Automatic selection must stay within the closed kernel set.
	if k := ActiveKernel(); k != KernelScalar && k != KernelWide {
		t.Errorf("ActiveKernel = %v, not a known kernel", k)
	}
}

func TestApplyOptions(t *testing.T) {
	defer AutoKernel()

	ApplyOptions(blit.Options{ForceScalar: true})
	if got := ActiveKernel(); got != KernelScalar {
		t.Errorf("ForceScalar, ActiveKernel = %v", got)
	}
	ApplyOptions(blit.Options{})
	if k := ActiveKernel(); k != KernelScalar && k != KernelWide {
		t.Errorf("auto selection gave %v", k)
	}
}

func TestKernelString(t *testing.T) {
	if KernelScalar.String() != "scalar" || KernelWide.String() != "wide" {
		t.Error("kernel names wrong")
	}
	if Kernel(7).String() != "unknown" {
		t.Error("unknown kernel name wrong")
	}
}
