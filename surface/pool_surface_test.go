// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"

	"github.com/gogfx/blit"
)

func TestPoolGetPutReuse(t *testing.T) {
	p, err := NewPool(32, 32, 4)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Destroy()

	s, err := p.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	_ = s.Clear(blit.RGB(255, 0, 0))
	p.Put(s)

	s2, err := p.Get()
	if err != nil {
		t.Fatalf("Get after Put: %v", err)
	}
	if s2 != s {
		t.Error("pool did not reuse the returned surface")
	}
	// Returned surfaces come back cleared.
	if got := s2.PixelAt(0, 0); got != (blit.Color{}) {
		t.Errorf("reused surface not cleared: %v", got)
	}
}

func TestPoolPutWrongDimensions(t *testing.T) {
	p, err := NewPool(32, 32, 4)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Destroy()

	odd, err := New(16, 16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.Put(odd)
	if odd.Valid() {
		t.Error("wrong-size surface retained instead of destroyed")
	}
}

func TestPoolRetentionCap(t *testing.T) {
	p, err := NewPool(8, 8, 2)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer p.Destroy()

	var surfaces []*Surface
	for i := 0; i < 3; i++ {
		s, err := p.Get()
		if err != nil {
			t.Fatalf("Get %d: %v", i, err)
		}
		surfaces = append(surfaces, s)
	}
	for _, s := range surfaces {
		p.Put(s)
	}
	// The first two returns fill the pool; the third overflows.
	if !surfaces[0].Valid() || !surfaces[1].Valid() {
		t.Error("retained surface was destroyed")
	}
	if surfaces[2].Valid() {
		t.Error("overflow surface retained past the cap")
	}
}

func TestPoolRejectsBadParams(t *testing.T) {
	cases := [][3]int{{0, 8, 2}, {8, 0, 2}}
	for _, c := range cases {
		if _, err := NewPool(c[0], c[1], c[2]); !errors.Is(err, blit.ErrInvalidParam) {
			t.Errorf("NewPool(%v): got %v, want ErrInvalidParam", c, err)
		}
	}
	if _, err := NewPoolWithAllocator(8, 8, 2, nil); !errors.Is(err, blit.ErrInvalidParam) {
		t.Errorf("nil allocator: got %v, want ErrInvalidParam", err)
	}
}

func TestPoolDefaultRetention(t *testing.T) {
	p, err := NewPool(8, 8, 0)
	if err != nil {
		t.Fatalf("NewPool with default cap: %v", err)
	}
	defer p.Destroy()
	if want := blit.DefaultOptions().SurfacePoolMax; p.max != want {
		t.Errorf("max = %d, want %d", p.max, want)
	}
}
