// Copyright 2026 The gogfx Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"testing"

	"github.com/gogfx/blit"
	"github.com/gogfx/blit/surface"
)

func mustSurface(t *testing.T, w, h int) *surface.Surface {
	t.Helper()
	s, err := surface.New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return s
}

func countSet(s *surface.Surface) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.PixelAt(x, y) != (blit.Color{}) {
				n++
			}
		}
	}
	return n
}

func TestLineHorizontal(t *testing.T) {
	s := mustSurface(t, 20, 20)
	red := blit.RGB(255, 0, 0)

	if err := Line(s, 0, 5, 10, 5, red); err != nil {
		t.Fatalf("Line: %v", err)
	}
	for x := 0; x <= 10; x++ {
		if s.PixelAt(x, 5) != red {
			t.Errorf("pixel (%d, 5) not set", x)
		}
	}
	if got := countSet(s); got != 11 {
		t.Errorf("pixel count = %d, want 11", got)
	}
}

func TestLineDiagonal(t *testing.T) {
	s := mustSurface(t, 20, 20)
	c := blit.RGB(0, 255, 0)

	if err := Line(s, 0, 0, 5, 5, c); err != nil {
		t.Fatalf("Line: %v", err)
	}
	for i := 0; i <= 5; i++ {
		if s.PixelAt(i, i) != c {
			t.Errorf("pixel (%d, %d) not set", i, i)
		}
	}
	if got := countSet(s); got != 6 {
		t.Errorf("pixel count = %d, want 6", got)
	}
}

func TestLineEndpointOrder(t *testing.T) {
	a := mustSurface(t, 32, 32)
	b := mustSurface(t, 32, 32)
	c := blit.RGB(255, 255, 255)

	if err := Line(a, 2, 3, 25, 17, c); err != nil {
		t.Fatalf("Line: %v", err)
	}
	if err := Line(b, 25, 17, 2, 3, c); err != nil {
		t.Fatalf("Line reversed: %v", err)
	}
	if countSet(a) != countSet(b) {
		t.Errorf("pixel counts differ: %d vs %d", countSet(a), countSet(b))
	}
	if a.PixelAt(2, 3) != c || a.PixelAt(25, 17) != c {
		t.Error("endpoints not included")
	}
}

func TestLineAACoverage(t *testing.T) {
	s := mustSurface(t, 40, 40)
	if err := LineAA(s, 5, 5, 30, 12, blit.RGB(255, 255, 255)); err != nil {
		t.Fatalf("LineAA: %v", err)
	}
	if countSet(s) == 0 {
		t.Fatal("anti-aliased line drew nothing")
	}
	// A sloped line must land partial coverage somewhere.
	partial := false
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			a := s.PixelAt(x, y).A
			if a > 0 && a < 255 {
				partial = true
			}
		}
	}
	if !partial {
		t.Error("no partial-coverage pixels on a sloped line")
	}
}

func TestLineThick(t *testing.T) {
	s := mustSurface(t, 40, 40)
	c := blit.RGB(0, 0, 255)

	if err := LineThick(s, 5, 20, 35, 20, 0, c); !errors.Is(err, blit.ErrInvalidParam) {
		t.Fatalf("thickness 0: got %v, want ErrInvalidParam", err)
	}
	if err := LineThick(s, 5, 20, 35, 20, 5, c); err != nil {
		t.Fatalf("LineThick: %v", err)
	}
	for dy := -2; dy <= 2; dy++ {
		if s.PixelAt(20, 20+dy) != c {
			t.Errorf("pixel (20, %d) not covered by thick line", 20+dy)
		}
	}
}

func TestLineClipped(t *testing.T) {
	tests := []struct {
		name             string
		x0, y0, x1, y1   int
		wantAny, wantAll bool
	}{
		{"fully inside", 2, 2, 8, 8, true, false},
		{"fully outside", -20, -20, -5, -5, false, false},
		{"crossing", -5, 5, 15, 5, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSurface(t, 10, 10)
			clip := blit.Rect{X: 0, Y: 0, W: 10, H: 10}
			if err := LineClipped(s, tt.x0, tt.y0, tt.x1, tt.y1, clip, blit.RGB(255, 0, 0)); err != nil {
				t.Fatalf("LineClipped: %v", err)
			}
			if got := countSet(s) > 0; got != tt.wantAny {
				t.Errorf("drew pixels = %v, want %v", got, tt.wantAny)
			}
		})
	}
}

func TestLineClippedMatchesInterior(t *testing.T) {
	s := mustSurface(t, 10, 10)
	clip := blit.Rect{X: 0, Y: 0, W: 10, H: 10}
	if err := LineClipped(s, -5, 5, 15, 5, clip, blit.RGB(255, 0, 0)); err != nil {
		t.Fatalf("LineClipped: %v", err)
	}
	// The crossing horizontal line covers the full visible row.
	for x := 0; x < 10; x++ {
		if s.PixelAt(x, 5) == (blit.Color{}) {
			t.Errorf("pixel (%d, 5) not set after clipping", x)
		}
	}
}

func TestLineClippedSubRect(t *testing.T) {
	s := mustSurface(t, 20, 20)
	clip := blit.Rect{X: 5, Y: 5, W: 5, H: 5}
	if err := LineClipped(s, 0, 7, 19, 7, clip, blit.RGB(255, 0, 0)); err != nil {
		t.Fatalf("LineClipped: %v", err)
	}
	if s.PixelAt(4, 7) != (blit.Color{}) || s.PixelAt(10, 7) != (blit.Color{}) {
		t.Error("line escaped the clip rectangle")
	}
	for x := 5; x <= 9; x++ {
		if s.PixelAt(x, 7) == (blit.Color{}) {
			t.Errorf("pixel (%d, 7) inside clip not set", x)
		}
	}
}

func TestLineInvalidSurface(t *testing.T) {
	var s *surface.Surface
	if err := Line(s, 0, 0, 5, 5, blit.RGB(1, 2, 3)); !errors.Is(err, blit.ErrInvalidParam) {
		t.Errorf("nil surface: got %v, want ErrInvalidParam", err)
	}
}
